package public

import (
	"errors"
	"io"
	"net/http"

	handlershared "github.com/elverra/zenika-api/internal/http/handlers/shared"
	"github.com/elverra/zenika-api/internal/http/response"
	"github.com/elverra/zenika-api/internal/payment/orange"
	"github.com/elverra/zenika-api/internal/payment/sama"
	"github.com/elverra/zenika-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PaymentInitiateRequest is the mobile-money initiation payload.
type PaymentInitiateRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Phone     string          `json:"phone"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Reference string          `json:"reference"`
	Purpose   string          `json:"purpose"`
}

func (r PaymentInitiateRequest) toInput(userID *uint) service.InitiateInput {
	return service.InitiateInput{
		UserID:    userID,
		Amount:    r.Amount,
		Currency:  r.Currency,
		Phone:     r.Phone,
		Email:     r.Email,
		Name:      r.Name,
		Reference: r.Reference,
		Purpose:   r.Purpose,
	}
}

// PaymentInitiateOrange starts an Orange Money WebPayment. Missing
// credentials answer with code 500 before any vendor call.
func (h *Handler) PaymentInitiateOrange(c *gin.Context) {
	var req PaymentInitiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	result, err := h.PaymentService.InitiateOrangeMoney(c.Request.Context(), req.toInput(optionalUserID(c)))
	if err != nil {
		h.respondOrangeError(c, err)
		return
	}
	response.Success(c, result)
}

// PaymentInitiateSama starts a SAMA Money payment. Missing credentials
// answer with code 503 before any vendor call.
func (h *Handler) PaymentInitiateSama(c *gin.Context) {
	var req PaymentInitiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	result, err := h.PaymentService.InitiateSamaMoney(c.Request.Context(), req.toInput(optionalUserID(c)))
	if err != nil {
		h.respondSamaError(c, err)
		return
	}
	response.Success(c, result)
}

func (h *Handler) respondOrangeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, orange.ErrConfigInvalid):
		response.ErrorWithData(c, response.CodeInternal, "orange money is not configured", gin.H{"detail": err.Error()})
	case errors.Is(err, orange.ErrAuthFailed), errors.Is(err, orange.ErrRequestFailed), errors.Is(err, orange.ErrResponseInvalid):
		handlershared.RequestLog(c).Errorw("orange_payment_failed", "error", err)
		response.ErrorWithData(c, response.CodeInternal, "orange money payment failed", gin.H{"detail": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, response.CodeBadRequest, "amount must be positive", nil)
	default:
		respondError(c, response.CodeInternal, "payment initiation failed", err)
	}
}

func (h *Handler) respondSamaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, sama.ErrConfigInvalid):
		response.ErrorWithData(c, response.CodeServiceUnavailable, "sama money is not configured", gin.H{"detail": err.Error()})
	case errors.Is(err, sama.ErrRequestFailed), errors.Is(err, sama.ErrResponseInvalid):
		handlershared.RequestLog(c).Errorw("sama_payment_failed", "error", err)
		response.ErrorWithData(c, response.CodeInternal, "sama money payment failed", gin.H{"detail": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, response.CodeBadRequest, "amount must be positive", nil)
	default:
		respondError(c, response.CodeInternal, "payment initiation failed", err)
	}
}

// PaymentVerifyRequest checks the state of an attempt.
type PaymentVerifyRequest struct {
	Gateway   string `json:"gateway" binding:"required"`
	Reference string `json:"reference" binding:"required"`
}

// PaymentVerify reports the recorded state of a payment attempt.
func (h *Handler) PaymentVerify(c *gin.Context) {
	var req PaymentVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	attempt, err := h.PaymentService.Verify(req.Gateway, req.Reference)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, msg: "payment not found"},
		}, response.CodeInternal, "verify payment failed")
		return
	}
	response.Success(c, gin.H{
		"reference":  attempt.Reference,
		"gateway":    attempt.Gateway,
		"status":     attempt.Status,
		"amount":     attempt.Amount,
		"currency":   attempt.Currency,
		"expires_at": attempt.ExpiresAt,
	})
}

// PaymentOrangeCallback applies an Orange Money notification.
func (h *Handler) PaymentOrangeCallback(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, response.CodeBadRequest, "read callback body failed", err)
		return
	}
	attempt, err := h.PaymentService.HandleOrangeCallback(body)
	if err != nil {
		h.respondCallbackError(c, err)
		return
	}
	response.Success(c, gin.H{"reference": attempt.Reference, "status": attempt.Status})
}

// PaymentSamaCallback applies a SAMA Money notification.
func (h *Handler) PaymentSamaCallback(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, response.CodeBadRequest, "read callback body failed", err)
		return
	}
	attempt, err := h.PaymentService.HandleSamaCallback(body)
	if err != nil {
		h.respondCallbackError(c, err)
		return
	}
	response.Success(c, gin.H{"reference": attempt.Reference, "status": attempt.Status})
}

func (h *Handler) respondCallbackError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, orange.ErrResponseInvalid), errors.Is(err, sama.ErrResponseInvalid):
		respondError(c, response.CodeBadRequest, "invalid callback payload", nil)
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "payment not found", nil)
	default:
		respondError(c, response.CodeInternal, "callback processing failed", err)
	}
}

// DemoPayment renders a minimal hosted-payment stand-in for local
// testing.
func (h *Handler) DemoPayment(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(demoPaymentHTML))
}

// PaymentSuccess is the return page after a completed payment.
func (h *Handler) PaymentSuccess(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(paymentSuccessHTML))
}

// PaymentCancel is the return page after an abandoned payment.
func (h *Handler) PaymentCancel(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(paymentCancelHTML))
}

const demoPaymentHTML = `<!DOCTYPE html>
<html lang="fr">
<head><meta charset="utf-8"><title>Paiement de démonstration</title></head>
<body>
<h1>Paiement de démonstration</h1>
<p>Cette page remplace la page de paiement du fournisseur en environnement de test.</p>
<p><a href="/payment-success">Confirmer le paiement</a> | <a href="/payment-cancel">Annuler</a></p>
</body>
</html>`

const paymentSuccessHTML = `<!DOCTYPE html>
<html lang="fr">
<head><meta charset="utf-8"><title>Paiement réussi</title></head>
<body>
<h1>Paiement réussi</h1>
<p>Votre paiement a été enregistré. Vous pouvez fermer cette page.</p>
</body>
</html>`

const paymentCancelHTML = `<!DOCTYPE html>
<html lang="fr">
<head><meta charset="utf-8"><title>Paiement annulé</title></head>
<body>
<h1>Paiement annulé</h1>
<p>Votre paiement n'a pas été effectué.</p>
</body>
</html>`
