package main

import (
	"net/http"
	"strings"

	"github.com/fixwire/fixterm/dma"
	"github.com/fixwire/fixterm/run"
	"github.com/gbkr-com/mkt"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	basePath  = "/v1/orders"
	resetPath = "/v1/session/reset"
)

// A Handler for HTTP order entry.
type Handler struct {
	address     string
	submissions chan *run.Submission
	sender      *run.Sender
}

// Bind this [Handler] to [*gin.Engine].
func (x *Handler) Bind(router *gin.Engine) {
	router.POST(basePath, x.postOrder)
	router.POST(resetPath, x.postReset)
}

func (x *Handler) postOrder(ctx *gin.Context) {
	//
	// Body. Quantity and price arrive as strings so no precision is lost
	// in a float.
	//
	body := struct {
		Side     string `json:"side"`
		Symbol   string `json:"symbol"`
		Quantity string `json:"quantity"`
		Price    string `json:"price"`
	}{}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	//
	// Content.
	//
	side := mkt.SideFromString(strings.ToUpper(body.Side))
	if side == 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Unrecognised side"})
		return
	}
	quantity, err := decimal.NewFromString(body.Quantity)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Unrecognised quantity"})
		return
	}
	price, err := decimal.NewFromString(body.Price)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Unrecognised price"})
		return
	}
	ticket := &dma.Ticket{
		ClOrdID:  mkt.NewOrderID(),
		Side:     side,
		Symbol:   body.Symbol,
		OrderQty: quantity,
		Price:    price,
	}
	if err := ticket.Validate(); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	//
	// Forward.
	//
	x.submissions <- &run.Submission{Address: x.address, Ticket: ticket}

	ctx.JSON(http.StatusAccepted, gin.H{"clOrdID": ticket.ClOrdID})
}

func (x *Handler) postReset(ctx *gin.Context) {
	x.sender.Reset()
	ctx.JSON(http.StatusAccepted, gin.H{})
}
