package httpresp

import "github.com/gin-gonic/gin"

// Los listados devuelven arrays JSON planos; el front los consume tal cual.
func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(201, data)
}
