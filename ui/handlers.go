package ui

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"scenery/adapters/tabular"
	"scenery/domain/core"
	"scenery/domain/report"
	"scenery/engine"
	"scenery/internal/testkit"
)

// BuildReportRequest is the JSON body for programmatic report builds.
type BuildReportRequest struct {
	Header        []string       `json:"header" binding:"required"`
	Rows          [][]string     `json:"rows"`
	ReportType    string         `json:"report_type"`
	Choices       report.Choices `json:"choices"`
	MaxCategories int            `json:"max_categories"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleBuildReport builds a report from an inline table. The table
// still goes through the cleaning contract so callers get the same
// guarantees as file uploads.
func (s *Server) handleBuildReport(c *gin.Context) {
	var req BuildReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table, err := tabular.CleanTable(req.Header, req.Rows)
	if err != nil {
		s.respondTableError(c, err)
		return
	}

	result, err := s.service.Build(c.Request.Context(), table, req.ReportType, req.Choices, req.MaxCategories)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleUploadReport builds a report from a multipart file upload with
// choices passed as form fields.
func (s *Server) handleUploadReport(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}

	reader, err := tabular.ReaderForFilename(fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open upload"})
		return
	}
	defer file.Close()

	table, err := reader.Read(file)
	if err != nil {
		s.respondTableError(c, err)
		return
	}

	choices := choicesFromForm(c)
	maxCategories, _ := strconv.Atoi(c.PostForm("max_categories"))

	result, err := s.service.Build(c.Request.Context(), table, c.PostForm("report_type"), choices, maxCategories)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleDemoReport builds a report from the synthetic retail dataset,
// exercising every chart kind without requiring an upload.
func (s *Server) handleDemoReport(c *gin.Context) {
	gen := testkit.NewDatasetGenerator(testkit.DefaultGeneratorConfig())
	table := gen.GenerateTable()

	choices := report.Choices{
		PrimaryNumeric: "revenue",
		ScatterX:       "units",
		ScatterY:       "revenue",
		CategoryVolume: "region",
		CategoryA:      "region",
		CategoryB:      "product",
		RadialCategory: "product",
		RadialMode:     report.RadialSum,
		RadialValue:    "revenue",
	}

	result, err := s.service.Build(c.Request.Context(), table, "demo", choices, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// PaletteRequest asks for n shades of a base color.
type PaletteRequest struct {
	BaseColor string `json:"base_color"`
	Count     int    `json:"count" binding:"required"`
}

func (s *Server) handlePalette(c *gin.Context) {
	var req PaletteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	base := req.BaseColor
	if base == "" {
		base = s.config.Report.BaseColor
	}
	c.JSON(http.StatusOK, gin.H{"shades": engine.ShadesHex(base, req.Count)})
}

func (s *Server) respondTableError(c *gin.Context, err error) {
	status := http.StatusUnprocessableEntity
	if core.IsMalformedTableError(err) || errors.Is(err, core.ErrNoDataRows) {
		status = http.StatusBadRequest
	}
	s.logger.Warn("rejected table: %v", err)
	c.JSON(status, gin.H{"error": err.Error()})
}

func choicesFromForm(c *gin.Context) report.Choices {
	return report.Choices{
		PrimaryNumeric:   c.PostForm("primary_numeric"),
		ScatterX:         c.PostForm("scatter_x"),
		ScatterY:         c.PostForm("scatter_y"),
		CategoryVolume:   c.PostForm("category_volume"),
		CategoryA:        c.PostForm("category_a"),
		CategoryB:        c.PostForm("category_b"),
		RadialCategory:   c.PostForm("radial_category_col"),
		RadialCategories: c.PostFormArray("radial_categories"),
		RadialMode:       report.RadialMode(c.PostForm("radial_mode")),
		RadialValue:      c.PostForm("radial_value_col"),
	}
}
