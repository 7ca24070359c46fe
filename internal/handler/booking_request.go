package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/space-booking/internal/model"
	"github.com/iliyamo/space-booking/internal/queue"
	"github.com/iliyamo/space-booking/internal/repository"
	queue_publisher "github.com/iliyamo/space-booking/internal/service"
)

// RequestHandler owns the booking-request lifecycle endpoints: creating a
// request, listing requests made and received, viewing one request with
// its sibling requests, and resolving a request as the space owner.  All
// methods assume JWT middleware has already run.
type RequestHandler struct {
	Bookings *repository.BookingRepo
	Spaces   *repository.SpaceRepo
	Users    *repository.UserRepo
}

// NewRequestHandler constructs a RequestHandler and panics if a dependency is nil.
func NewRequestHandler(bookings *repository.BookingRepo, spaces *repository.SpaceRepo, users *repository.UserRepo) *RequestHandler {
	if bookings == nil || spaces == nil || users == nil {
		panic("nil repository passed to NewRequestHandler")
	}
	return &RequestHandler{Bookings: bookings, Spaces: spaces, Users: users}
}

type createRequestReq struct {
	SpaceID       uint64 `json:"space_id" validate:"required"`
	RequestedDate string `json:"requested_date" validate:"required"`
}

type bookingResp struct {
	ID          uint64 `json:"id"`
	UserID      uint64 `json:"user_id"`
	SpaceID     uint64 `json:"space_id"`
	BookingDate string `json:"booking_date"`
	Status      string `json:"status"`
}

func toBookingResp(b model.Booking) bookingResp {
	return bookingResp{
		ID:          b.ID,
		UserID:      b.UserID,
		SpaceID:     b.SpaceID,
		BookingDate: b.BookingDate.Format(dateLayout),
		Status:      string(b.Status),
	}
}

// CreateRequest handles POST /v1/requests.  A fresh booking always starts
// in the Requested state.  Duplicate requests for the same space and date
// are not rejected, and the requested date is not checked against the
// space's availability window; both are known gaps of the current product.
func (h *RequestHandler) CreateRequest(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	date, err := parseDate(req.RequestedDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid requested_date"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	space, err := h.Spaces.GetByID(ctx, req.SpaceID)
	if err != nil {
		if errors.Is(err, repository.ErrSpaceNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "space not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load space failed"})
	}

	b := model.Booking{
		UserID:      uid,
		SpaceID:     space.ID,
		BookingDate: date,
		Status:      model.StatusRequested,
	}
	if err := h.Bookings.Create(ctx, &b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}

	// Best effort: a broker outage must not fail the request.
	_ = queue_publisher.PublishBookingRequested(ctx, queue.BookingRequestedEvent{
		EventID:     uuid.NewString(),
		BookingID:   b.ID,
		SpaceID:     space.ID,
		SpaceName:   space.Name,
		RequesterID: uid,
		BookingDate: b.BookingDate.Format(dateLayout),
		RequestedAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, toBookingResp(b))
}

// ListRequests handles GET /v1/requests.  It returns the booking requests
// the caller has made on other people's spaces and those received on the
// caller's own spaces, both newest first.
func (h *RequestHandler) ListRequests(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	made, err := h.Bookings.ListMadeBy(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list requests failed"})
	}
	received, err := h.Bookings.ListReceivedBy(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list requests failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"requests_made":     made,
		"requests_received": received,
	})
}

// requestDetailResp is the full view of one booking request.
type requestDetailResp struct {
	Booking       bookingResp                  `json:"booking"`
	Space         spaceResp                    `json:"space"`
	RequesterName string                       `json:"requesting_user_name"`
	OtherRequests []repository.EnrichedBooking `json:"other_requests"`
	IsApprover    bool                         `json:"is_approver"`
}

// GetRequest handles GET /v1/requests/:id.  The detail view joins the
// booking with its space and requester, lists the sibling requests on the
// same space (the booking itself excluded), and tells the client whether
// the viewer is the space owner and may resolve the request.  A dangling
// space or user reference is a 404, never a nil dereference.
func (h *RequestHandler) GetRequest(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || bookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	booking, err := h.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load booking failed"})
	}
	space, err := h.Spaces.GetByID(ctx, booking.SpaceID)
	if err != nil {
		if errors.Is(err, repository.ErrSpaceNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "space not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load space failed"})
	}
	requester, err := h.Users.GetByID(ctx, booking.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}
	all, err := h.Bookings.ListBySpace(ctx, booking.SpaceID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list requests failed"})
	}

	return c.JSON(http.StatusOK, requestDetailResp{
		Booking:       toBookingResp(booking),
		Space:         toSpaceResp(*space),
		RequesterName: requester.UserName,
		OtherRequests: excludeBooking(all, booking.ID),
		IsApprover:    space.UserID == uid,
	})
}

type resolveReq struct {
	Action string `json:"action" validate:"required"`
}

// ResolveRequest handles POST /v1/requests/:id.  The action must be
// exactly approve or deny; anything else is a 400 and never touches the
// booking.  Only the space owner may resolve (403 otherwise), and a
// booking already in a terminal state stays immutable (409).
func (h *RequestHandler) ResolveRequest(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || bookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var req resolveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	action, err := model.ParseAction(req.Action)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "action must be approve or deny"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	booking, err := h.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load booking failed"})
	}
	space, err := h.Spaces.GetByID(ctx, booking.SpaceID)
	if err != nil {
		if errors.Is(err, repository.ErrSpaceNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "space not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load space failed"})
	}

	newStatus, err := model.ResolveTransition(booking, *space, uid, action)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUnauthorized):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "only the space owner may resolve this request"})
		case errors.Is(err, model.ErrAlreadyResolved):
			return c.JSON(http.StatusConflict, echo.Map{"error": "booking request already resolved"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "resolve failed"})
		}
	}

	if err := h.Bookings.UpdateStatus(ctx, booking.ID, newStatus); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update status failed"})
	}
	booking.Status = newStatus

	_ = queue_publisher.PublishBookingResolved(ctx, queue.BookingResolvedEvent{
		EventID:     uuid.NewString(),
		BookingID:   booking.ID,
		SpaceID:     space.ID,
		SpaceName:   space.Name,
		RequesterID: booking.UserID,
		ActorID:     uid,
		NewStatus:   string(newStatus),
		BookingDate: booking.BookingDate.Format(dateLayout),
		ResolvedAt:  time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, toBookingResp(booking))
}

// excludeBooking filters one booking out of an enriched list, used to
// build the sibling list on the request detail view.
func excludeBooking(list []repository.EnrichedBooking, id uint64) []repository.EnrichedBooking {
	out := make([]repository.EnrichedBooking, 0, len(list))
	for _, e := range list {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}
