package middlewares

import (
	"MediDesk/utils"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondJSON writes a JSON response to the client.
func RespondJSON(c *gin.Context, data interface{}, status int) {
	c.JSON(status, data)
}

// RespondMessage writes a success-style outcome with a flash category for
// the UI layer.
func RespondMessage(c *gin.Context, status int, message, category string, data interface{}) {
	body := gin.H{"message": message, "category": category}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// RespondDomainError converts a failed operation into the structured outcome
// contract: error kind + human-readable message + flash category. Anything
// that is not a DomainError is storage unavailability and becomes a generic
// server error; the failed transaction has already rolled back.
func RespondDomainError(c *gin.Context, err error) {
	if de := utils.AsDomainError(err); de != nil {
		c.JSON(de.Kind.HTTPStatus(), gin.H{
			"error":    de.Message,
			"kind":     string(de.Kind),
			"category": de.Kind.Category(),
		})
		return
	}
	log.Printf("Internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":    "internal server error",
		"kind":     "internal",
		"category": "danger",
	})
}

// HttpError logs an error and writes an HTTP error response to the client.
func HttpError(c *gin.Context, message string, status int, err error) {
	log.Printf("HTTP %d - %s: %v", status, message, err)
	c.JSON(status, gin.H{"error": message})
}
