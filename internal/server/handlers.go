package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AbdulMannan19/Zain-Juice-Centre/internal/domain"
	apperrors "github.com/AbdulMannan19/Zain-Juice-Centre/internal/errors"
	"github.com/AbdulMannan19/Zain-Juice-Centre/internal/version"
)

type orderItemRequest struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   *int   `json:"quantity"`
}

type createOrderRequest struct {
	Items []orderItemRequest `json:"items"`
}

type createOrderResponse struct {
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}

func (s *Server) handleGetMenu(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.Menu())
}

func (s *Server) handleCreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, apperrors.ValidationError("invalid request body"))
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		// Quantity defaults to 1 when omitted; an explicit non-positive
		// quantity is rejected by the ledger.
		quantity := 1
		if item.Quantity != nil {
			quantity = *item.Quantity
		}
		items = append(items, domain.OrderItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   quantity,
		})
	}

	order, err := s.app.PlaceOrder(items)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, createOrderResponse{
		OrderID: order.ID,
		Message: "Order placed successfully",
	})
}

func (s *Server) handleListOrders(c echo.Context) error {
	return c.JSON(http.StatusOK, s.app.ListOrders())
}

func (s *Server) handleGetOrder(c echo.Context) error {
	order, err := s.app.GetOrder(c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

func (s *Server) handleLiveness(c echo.Context) error {
	uptime := s.clock.Since(s.startTime).Seconds()
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": uptime,
	})
}

func (s *Server) handleReadiness(c echo.Context) error {
	// No external dependencies; ready once the process serves traffic.
	return c.JSON(http.StatusOK, map[string]any{
		"status":        "ready",
		"live_displays": s.app.LiveDisplays(),
	})
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(http.StatusOK, version.Get())
}

// errorJSON maps application errors to their HTTP status with an {error} body.
func errorJSON(c echo.Context, err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return c.JSON(appErr.HTTPStatus(), map[string]string{"error": appErr.Message})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
