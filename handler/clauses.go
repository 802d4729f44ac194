package handler

import (
	"net/http"

	"github.com/AnTengye/contratos/generator"
	"github.com/gin-gonic/gin"
)

// Clauses lists the standard clause catalog
func Clauses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"clauses": generator.Catalog()})
}
