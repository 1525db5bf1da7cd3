// Package controllers file: controllers/fees_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"academy-admin/models"
)

// PaymentStatuses are the status selector options on the fees page.
var PaymentStatuses = []string{"All", "paid", "pending", "overdue"}

// Fees renders the fee-tracking page.
func Fees(c *gin.Context) {
	f := filterFromQuery(c)
	data := pageData("fees", f)
	data["Payments"] = deps.Payments.Filter(f)
	data["Stats"] = deps.Payments.Stats()
	data["Statuses"] = PaymentStatuses
	c.HTML(http.StatusOK, "fees.html", data)
}

// AddPayment records a fee from the entry form. The status is derived from
// the paid-date field: filled means "paid", empty means "pending". A
// payment method is required only when a paid date was entered.
func AddPayment(c *gin.Context) {
	playerID := c.PostForm("playerId")
	playerName := c.PostForm("playerName")
	feeType := c.PostForm("feeType")
	dueDate := c.PostForm("dueDate")
	if playerID == "" || playerName == "" || feeType == "" || dueDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "playerId, playerName, feeType and dueDate are required"})
		return
	}

	amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a number"})
		return
	}

	paidDate := c.PostForm("paidDate")
	paymentMethod := c.PostForm("paymentMethod")
	if paidDate != "" && paymentMethod == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paymentMethod is required when a paid date is set"})
		return
	}

	p := models.Payment{
		ID:            uuid.NewString(),
		PlayerID:      playerID,
		PlayerName:    playerName,
		Category:      c.PostForm("category"),
		FeeType:       feeType,
		Amount:        amount,
		DueDate:       dueDate,
		PaidDate:      paidDate,
		Status:        models.DerivePaymentStatus(paidDate),
		PaymentMethod: paymentMethod,
		Guardian:      c.PostForm("guardian"),
		Phone:         c.PostForm("phone"),
	}
	deps.Payments.Add(p)
	recordActivity("payment", "Fee Record Created", feeType+" for "+playerName+" ("+p.Status+")")
	c.Redirect(http.StatusFound, "/fees")
}
