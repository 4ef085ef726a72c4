package ui

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"projectpulse/adapters/excel"
	"projectpulse/domain/table"
	"projectpulse/internal/errors"
	"projectpulse/internal/profiling"
	"projectpulse/ui/services"
)

// accepted upload extensions, matching the loader's contract
var validExtensions = []string{".csv", ".xlsx"}

// respondError writes a structured error response carrying the AppError
// code alongside the user-facing message.
func respondError(c *gin.Context, status int, err *errors.AppError) {
	c.JSON(status, gin.H{"error": err.Message, "code": err.Code})
}

// handleIndex renders the dashboard page
func (s *Server) handleIndex(c *gin.Context) {
	s.sessionID(c)
	s.renderTemplate(c, "index.html", gin.H{
		"Title":   "Project Monitoring Dashboard",
		"Cascade": table.CascadeOrder,
	})
}

// handleUpload ingests a dataset file into the session
func (s *Server) handleUpload(c *gin.Context) {
	id := s.sessionID(c)

	file, header, err := c.Request.FormFile("dataset")
	if err != nil {
		log.Printf("[handleUpload] FAILED - No file uploaded: %v", err)
		respondError(c, http.StatusBadRequest, errors.InvalidInput("No file uploaded"))
		return
	}
	defer file.Close()

	maxFileSize := s.cfg.Upload.MaxUploadMB * 1024 * 1024
	if header.Size > maxFileSize {
		log.Printf("[handleUpload] FAILED - File too large: %d bytes", header.Size)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File size (%.1f MB) exceeds the %dMB limit",
				float64(header.Size)/(1024*1024), s.cfg.Upload.MaxUploadMB),
		})
		return
	}

	filename := header.Filename
	hasValidExtension := false
	for _, ext := range validExtensions {
		if strings.HasSuffix(strings.ToLower(filename), ext) {
			hasValidExtension = true
			break
		}
	}
	if !hasValidExtension {
		log.Printf("[handleUpload] FAILED - Invalid file extension: %s", filename)
		respondError(c, http.StatusBadRequest, errors.InvalidInput("Only Excel (.xlsx) and CSV (.csv) files are allowed"))
		return
	}

	t, err := excel.LoadTable(filename, file)
	if err != nil {
		// The session keeps going without a table, exactly as if no
		// file had been uploaded.
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Error loading file: %v", err),
			"code":  errors.GetCode(err),
		})
		return
	}

	s.sessions.SetTable(id, t)
	c.JSON(http.StatusOK, gin.H{
		"message": "Dataset loaded",
		"rows":    t.RowCount(),
		"columns": t.Columns,
	})
}

// handleOptions returns the option lists for all four cascade dropdowns.
// Each dropdown is resolved under the selections of the dropdowns before
// it, so choosing a Week narrows the Account Name list and so on.
func (s *Server) handleOptions(c *gin.Context) {
	id := s.sessionID(c)

	t, constraints, ok := s.sessions.Snapshot(id)
	if !ok || t == nil {
		c.JSON(http.StatusOK, gin.H{"options": emptyOptions(), "selections": gin.H{}})
		return
	}

	options := make(map[string][]string, len(table.CascadeOrder))
	selections := make(map[string]string, len(table.CascadeOrder))
	prefix := make(table.Constraints)
	for _, col := range table.CascadeOrder {
		options[col] = table.Options(t, col, prefix)
		if val := constraints[col]; val != "" {
			prefix[col] = val
			selections[col] = val
		}
	}

	c.JSON(http.StatusOK, gin.H{"options": options, "selections": selections})
}

func emptyOptions() map[string][]string {
	options := make(map[string][]string, len(table.CascadeOrder))
	for _, col := range table.CascadeOrder {
		options[col] = []string{}
	}
	return options
}

// handleSelect records one dropdown selection in the session
func (s *Server) handleSelect(c *gin.Context) {
	id := s.sessionID(c)

	var req struct {
		Column string `json:"column" binding:"required"`
		Value  string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, errors.InvalidInput("Invalid request format"))
		return
	}

	valid := false
	for _, col := range table.CascadeOrder {
		if col == req.Column {
			valid = true
			break
		}
	}
	if !valid {
		respondError(c, http.StatusBadRequest, errors.InvalidInput(fmt.Sprintf("Unknown selector column: %s", req.Column)))
		return
	}

	s.sessions.Select(id, req.Column, req.Value)
	c.JSON(http.StatusOK, gin.H{"message": "Selection recorded"})
}

// handleReport filters the session's table and renders the status table
func (s *Server) handleReport(c *gin.Context) {
	id := s.sessionID(c)

	t, constraints, ok := s.sessions.Snapshot(id)
	if !ok || t == nil {
		respondError(c, http.StatusNotFound, errors.NotFound("dataset"))
		return
	}

	filtered := table.Filter(t, constraints)
	log.Printf("[handleReport] Filtered %d/%d rows", filtered.RowCount(), t.RowCount())

	c.JSON(http.StatusOK, gin.H{
		"html": services.RenderStatusTable(filtered),
		"rows": filtered.RowCount(),
	})
}

// handleSummary returns the dataset profile for the session's table
func (s *Server) handleSummary(c *gin.Context) {
	id := s.sessionID(c)

	t, _, ok := s.sessions.Snapshot(id)
	if !ok || t == nil {
		respondError(c, http.StatusNotFound, errors.NotFound("dataset"))
		return
	}

	c.JSON(http.StatusOK, profiling.Summarize(t))
}
