package handler

import (
	"net/http"

	"dukapos/internal/apierror"
	"dukapos/internal/i18n"

	"github.com/gin-gonic/gin"
)

// I18nBundle serves the embedded string bundle for a language. Public: the
// login screen needs strings before any token exists.
func I18nBundle(c *gin.Context) {
	lang := c.Param("lang")
	if !i18n.Supported(lang) {
		c.JSON(http.StatusNotFound, apierror.New("unsupported language"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"language": lang,
		"rtl":      i18n.RTL(lang),
		"strings":  i18n.Bundle(lang),
	})
}

// I18nLanguages lists the supported language codes.
func I18nLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": i18n.Languages()})
}
