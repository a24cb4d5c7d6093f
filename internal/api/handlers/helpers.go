package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/pod-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
)

// CartSessionHeader carries the anonymous cart id issued by the storefront.
const CartSessionHeader = "X-Cart-Session"

// cartOwner prefers the authenticated user and falls back to the session header.
func cartOwner(r *http.Request) models.CartOwner {
	owner := models.CartOwner{SessionID: strings.TrimSpace(r.Header.Get(CartSessionHeader))}

	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		id := claims.UserID
		owner.UserID = &id
	}

	return owner
}

func pagination(r *http.Request, defaultSize int) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err != nil || pageSize < 1 {
		pageSize = defaultSize
	}

	return page, pageSize
}

func priceContext(r *http.Request) models.PriceContext {
	q := r.URL.Query()

	return models.PriceContext{
		Country:  strings.ToUpper(strings.TrimSpace(q.Get("country"))),
		Currency: strings.ToUpper(strings.TrimSpace(q.Get("currency"))),
	}
}
