package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-shorewatch/nlp"
)

type classifyRequest struct {
	Text string `json:"text"`
}

// ClassifyText runs the keyword extractor over arbitrary text. Useful for
// tuning the keyword lists without submitting real reports.
func ClassifyText(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"text":     req.Text,
		"analysis": nlp.Analyze(req.Text),
	})
}
