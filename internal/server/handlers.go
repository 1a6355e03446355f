package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/hirewithprachi/jdscore/internal/analysis"
	"github.com/hirewithprachi/jdscore/internal/db"
	"github.com/hirewithprachi/jdscore/internal/fetch"
	"github.com/hirewithprachi/jdscore/internal/schemas"
	"github.com/hirewithprachi/jdscore/internal/types"
)

// AnalyzeRequest represents the request body for /analyze. The job
// description comes either inline or as a URL to fetch.
type AnalyzeRequest struct {
	ResumeData json.RawMessage `json:"resumeData" validate:"required"`
	JD         string          `json:"jd,omitempty"`
	JobURL     string          `json:"jobUrl,omitempty"`
}

// Validate checks the request shape before any pipeline work happens.
func (r *AnalyzeRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return &ErrValidation{Field: "resumeData", Message: "resumeData is required"}
	}
	if r.JD == "" && r.JobURL == "" {
		return &ErrValidation{Field: "jd", Message: "either jd or jobUrl is required"}
	}
	if r.JD != "" && r.JobURL != "" {
		return &ErrValidation{Field: "jd", Message: "jd and jobUrl are mutually exclusive"}
	}
	return nil
}

// handleAnalyze runs one analysis, serving repeated postings from the
// cache when persistence is enabled.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jdText := req.JD
	if jdText == "" {
		fetched, err := fetch.JobPosting(r.Context(), req.JobURL, &fetch.Options{
			Timeout:   s.cfg.FetchTimeout,
			UserAgent: fetch.DefaultUserAgent,
		})
		if err != nil {
			log.Printf("Failed to fetch job posting %s: %v", req.JobURL, err)
			s.errorResponse(w, http.StatusBadGateway, "Failed to fetch job posting")
			return
		}
		jdText = fetched
	}

	if limit := s.cfg.MaxJobChars; limit > 0 && len(jdText) > limit {
		err := &ErrJobTextTooLong{Limit: limit}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := schemas.ValidateResume(req.ResumeData); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	var resume types.ResumeDocument
	if err := json.Unmarshal(req.ResumeData, &resume); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume document: "+err.Error())
		return
	}

	requester := s.extractClientID(r)
	contentHash := db.ContentHash(requester, jdText)

	if s.db != nil && s.cfg.CacheEnabled {
		cached, err := s.db.GetAnalysisByHash(r.Context(), contentHash)
		if err != nil {
			log.Printf("Cache lookup failed: %v", err)
		} else if cached != nil {
			w.Header().Set("X-Cache", "hit")
			w.Header().Set("X-Analysis-Id", cached.ID.String())
			s.rawJSONResponse(w, http.StatusOK, cached.Result)
			return
		}
	}

	result, err := analysis.Analyze(r.Context(), jdText, &resume)
	if err != nil {
		log.Printf("Analysis failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Analysis failed")
		return
	}

	if s.db != nil {
		resultJSON, err := json.Marshal(result)
		if err != nil {
			log.Printf("Failed to marshal analysis result: %v", err)
		} else {
			id, err := s.db.SaveAnalysis(r.Context(), db.Analysis{
				ContentHash: contentHash,
				Requester:   requester,
				JDChars:     len(jdText),
				Score:       result.Score,
				Result:      resultJSON,
			})
			if err != nil {
				// Persistence is best effort; the analysis still goes out.
				log.Printf("Failed to save analysis: %v", err)
			} else {
				w.Header().Set("X-Analysis-Id", id.String())
			}
		}
	}

	w.Header().Set("X-Cache", "miss")
	s.jsonResponse(w, http.StatusOK, result)
}

// handleGetAnalysis returns one persisted analysis by ID.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Persistence is disabled")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID")
		return
	}

	record, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		log.Printf("Failed to get analysis %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get analysis")
		return
	}
	if record == nil {
		notFound := &ErrAnalysisNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleListAnalyses lists recent analyses with optional filters.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Persistence is disabled")
		return
	}

	filters := db.AnalysisFilters{
		Requester: r.URL.Query().Get("requester"),
	}
	if v := r.URL.Query().Get("min_score"); v != "" {
		if minScore, err := strconv.Atoi(v); err == nil {
			filters.MinScore = minScore
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			filters.Limit = limit
		}
	}

	analyses, err := s.db.ListAnalyses(r.Context(), filters)
	if err != nil {
		log.Printf("Failed to list analyses: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list analyses")
		return
	}
	if analyses == nil {
		analyses = []db.AnalysisSummary{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": analyses})
}

// handleDeleteAnalysis removes one persisted analysis.
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Persistence is disabled")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID")
		return
	}

	record, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		log.Printf("Failed to get analysis %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete analysis")
		return
	}
	if record == nil {
		notFound := &ErrAnalysisNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	if err := s.db.DeleteAnalysis(r.Context(), id); err != nil {
		log.Printf("Failed to delete analysis %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete analysis")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// rawJSONResponse writes pre-marshaled JSON, used for cached results.
func (s *Server) rawJSONResponse(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing JSON response: %v", err)
	}
}
