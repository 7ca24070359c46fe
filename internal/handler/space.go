package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/space-booking/internal/model"
	"github.com/iliyamo/space-booking/internal/repository"
)

// SpaceHandler serves the space directory: creating listings, browsing
// them with an optional date-range filter, and viewing the booking
// requests a single space has received.
type SpaceHandler struct {
	Spaces   *repository.SpaceRepo
	Bookings *repository.BookingRepo
}

// NewSpaceHandler constructs a SpaceHandler and panics if a dependency is nil.
func NewSpaceHandler(spaces *repository.SpaceRepo, bookings *repository.BookingRepo) *SpaceHandler {
	if spaces == nil || bookings == nil {
		panic("nil repository passed to NewSpaceHandler")
	}
	return &SpaceHandler{Spaces: spaces, Bookings: bookings}
}

type createSpaceReq struct {
	SpaceName     string `json:"space_name" validate:"required"`
	Description   string `json:"spaces_description" validate:"required"`
	PricePerNight string `json:"price_per_night" validate:"required"`
	AvailableFrom string `json:"available_from_date" validate:"required"`
	AvailableTo   string `json:"available_to_date" validate:"required"`
}

type spaceResp struct {
	ID            uint64 `json:"id"`
	UserID        uint64 `json:"user_id"`
	SpaceName     string `json:"space_name"`
	Description   string `json:"spaces_description"`
	PricePerNight string `json:"price_per_night"`
	AvailableFrom string `json:"available_from_date"`
	AvailableTo   string `json:"available_to_date"`
}

func toSpaceResp(s model.Space) spaceResp {
	return spaceResp{
		ID:            s.ID,
		UserID:        s.UserID,
		SpaceName:     s.Name,
		Description:   s.Description,
		PricePerNight: s.PricePerNight,
		AvailableFrom: s.AvailableFrom.Format(dateLayout),
		AvailableTo:   s.AvailableTo.Format(dateLayout),
	}
}

// CreateSpace handles POST /v1/spaces.  The owner is the authenticated
// user; the availability window must be a valid, ordered pair of dates.
func (h *SpaceHandler) CreateSpace(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createSpaceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	from, err := parseDate(req.AvailableFrom)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid available_from_date"})
	}
	to, err := parseDate(req.AvailableTo)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid available_to_date"})
	}
	if from.After(to) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "available_from_date must not be after available_to_date"})
	}

	s := model.Space{
		UserID:        uid,
		Name:          req.SpaceName,
		Description:   req.Description,
		PricePerNight: req.PricePerNight,
		AvailableFrom: from,
		AvailableTo:   to,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Spaces.Create(ctx, &s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create space failed"})
	}
	return c.JSON(http.StatusCreated, toSpaceResp(s))
}

// ListSpaces handles GET /v1/spaces.  With both available_from_date and
// available_to_date query params the directory is narrowed to spaces
// whose availability window overlaps the inclusive query window; with
// either bound missing the full directory is returned in the same order.
func (h *SpaceHandler) ListSpaces(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	all, err := h.Spaces.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list spaces failed"})
	}

	var fromPtr, toPtr *time.Time
	fromRaw := c.QueryParam("available_from_date")
	toRaw := c.QueryParam("available_to_date")
	if fromRaw != "" && toRaw != "" {
		from, err := parseDate(fromRaw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid available_from_date"})
		}
		to, err := parseDate(toRaw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid available_to_date"})
		}
		fromPtr, toPtr = &from, &to
	}

	filtered := model.FilterByRange(all, fromPtr, toPtr)
	out := make([]spaceResp, 0, len(filtered))
	for _, s := range filtered {
		out = append(out, toSpaceResp(s))
	}
	return c.JSON(http.StatusOK, echo.Map{"spaces": out})
}

// ListSpaceRequests handles GET /v1/spaces/:id/requests.  It returns the
// space together with every booking request made against it.
func (h *SpaceHandler) ListSpaceRequests(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	spaceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || spaceID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid space id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	space, err := h.Spaces.GetByID(ctx, spaceID)
	if err != nil {
		if errors.Is(err, repository.ErrSpaceNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "space not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load space failed"})
	}
	bookings, err := h.Bookings.ListBySpace(ctx, spaceID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list requests failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"space":    toSpaceResp(*space),
		"requests": bookings,
	})
}
