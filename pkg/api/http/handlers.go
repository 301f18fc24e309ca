package http

import (
	"errors"
	"net/http"

	"github.com/aescanero/calcsvc/internal/application/calculator"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalculateResponse is the body of a successful calculation
type CalculateResponse struct {
	Result float64 `json:"result"`
}

// CalculateErrorResponse is the body returned for an unrecognized operation
type CalculateErrorResponse struct {
	Error string `json:"error"`
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"checks": gin.H{
			"calculator": "ok",
		},
	})
}

// handleCalculate handles GET /calculate?op=&a=&b=.
//
// An unrecognized op answers 200 with {"error":"Invalid operation"}. Bad
// operands, a zero divisor and non-finite results abort with a bare 500 and
// no JSON body; existing clients depend on both behaviors.
func (s *Server) handleCalculate(c *gin.Context) {
	op := c.Query("op")

	result, err := calculator.Calculate(op, c.Query("a"), c.Query("b"))

	operation, _ := calculator.ParseOperation(op)
	s.metrics.RecordCalculation(operation.String(), calculator.Outcome(err))

	switch {
	case err == nil:
		c.JSON(http.StatusOK, CalculateResponse{Result: result})
	case errors.Is(err, calculator.ErrInvalidOperation):
		s.logger.Debug("unrecognized operation", zap.String("op", op))
		c.JSON(http.StatusOK, CalculateErrorResponse{Error: calculator.InvalidOperationMessage})
	default:
		s.logger.Error("calculation failed",
			zap.String("op", op),
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err))
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
