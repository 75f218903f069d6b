// Package callback receives the fiscalization result the FN service
// delivers to a document's response URL.
package callback

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dgigel/go-modulkassa/modulkassa"
	"github.com/dgigel/go-modulkassa/modulkassa/model"
	"github.com/dgigel/go-modulkassa/modulkassa/token"
)

var logger = logrus.WithField("component", "modulkassa.callback")

// Processor consumes a validated fiscalization result.
type Processor func(result model.DocumentResult) error

// Handler validates the doc_id/token pair before the payload is even
// read; a mismatch causes no side effect.
func Handler(tokens token.Service, process Processor) gin.HandlerFunc {
	return func(c *gin.Context) {

		docID := c.Query("doc_id")
		tok := c.Query("token")

		if docID == "" || !tokens.Validate(tok, docID) {
			logger.WithField("doc_id", docID).Warn("callback token mismatch")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": modulkassa.ErrTokenMismatch.Error()})
			return
		}

		var result model.DocumentResult
		if err := c.ShouldBindJSON(&result); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		result.DocID = docID

		if err := process(result); err != nil {
			logger.WithError(err).WithField("doc_id", docID).Error("callback processing failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
