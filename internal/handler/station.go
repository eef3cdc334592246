package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/railtikit/rail-booking/internal/booking"
	"github.com/railtikit/rail-booking/internal/repository"
	"github.com/railtikit/rail-booking/internal/utils"
)

// StationHandler serves network reference data: stations, trains and
// the per-train route timetable.
type StationHandler struct {
	Stations *repository.StationRepo
	Trains   *repository.TrainRepo
	Coaches  *repository.CoachRepo
	Routes   *repository.RouteRepo
}

func NewStationHandler(s *repository.StationRepo, t *repository.TrainRepo,
	co *repository.CoachRepo, ro *repository.RouteRepo) *StationHandler {
	return &StationHandler{Stations: s, Trains: t, Coaches: co, Routes: ro}
}

type stationResp struct {
	ID          uint64 `json:"id"`
	StationName string `json:"station_name"`
	Location    string `json:"location"`
}

type trainResp struct {
	ID           uint64 `json:"id"`
	TrainName    string `json:"train_name"`
	TrainType    string `json:"train_type"`
	TotalCoaches uint32 `json:"total_coaches"`
}

type coachResp struct {
	ID          uint64 `json:"id"`
	CoachNumber string `json:"coach_number"`
	CoachType   string `json:"coach_type"`
	TotalSeats  uint32 `json:"total_seats"`
}

type searchTrainsReq struct {
	FromStation string `json:"from_station"`
	ToStation   string `json:"to_station"`
}

type routeStopResp struct {
	StationName    string  `json:"station_name"`
	SequenceNumber *uint32 `json:"sequence_number"`
	ArrivalTime    string  `json:"arrival_time"`
	DepartureTime  string  `json:"departure_time"`
	HaltMinutes    uint32  `json:"halt_minutes"`
}

// ListStations returns every station, alphabetically.
func (h *StationHandler) ListStations(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	stations, err := h.Stations.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]stationResp, len(stations))
	for i, s := range stations {
		out[i] = stationResp{ID: s.ID, StationName: s.StationName, Location: s.Location}
	}
	return c.JSON(http.StatusOK, echo.Map{"stations": out})
}

// TrainInfo looks a train up by exact name and returns it together
// with its coaches.
func (h *StationHandler) TrainInfo(c echo.Context) error {
	name := strings.TrimSpace(c.QueryParam("name"))
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name query param required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	train, err := h.Trains.GetByName(ctx, name)
	if err != nil {
		if err == repository.ErrTrainNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	coaches, err := h.Coaches.ListByTrain(ctx, train.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	coachOut := make([]coachResp, len(coaches))
	for i, co := range coaches {
		coachOut[i] = coachResp{ID: co.ID, CoachNumber: co.CoachNumber, CoachType: co.CoachType, TotalSeats: co.TotalSeats}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"train":   trainResp{ID: train.ID, TrainName: train.TrainName, TrainType: train.TrainType, TotalCoaches: train.TotalCoaches},
		"coaches": coachOut,
	})
}

// SearchTrains finds trains whose route serves both named stations.
// Unknown station names are a 404 so clients can tell a typo from an
// empty result.
func (h *StationHandler) SearchTrains(c echo.Context) error {
	var req searchTrainsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	from := strings.TrimSpace(req.FromStation)
	to := strings.TrimSpace(req.ToStation)
	if from == "" || to == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "from_station/to_station required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	fromSt, err := h.Stations.GetByName(ctx, from)
	if err != nil {
		if err == repository.ErrStationNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "from_station not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	toSt, err := h.Stations.GetByName(ctx, to)
	if err != nil {
		if err == repository.ErrStationNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "to_station not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	trains, err := h.Trains.FindServingBothStations(ctx, fromSt.ID, toSt.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]trainResp, len(trains))
	for i, t := range trains {
		out[i] = trainResp{ID: t.ID, TrainName: t.TrainName, TrainType: t.TrainType, TotalCoaches: t.TotalCoaches}
	}
	return c.JSON(http.StatusOK, echo.Map{"trains": out})
}

// TrainRoutes returns the ordered stop list of a train. Stops with a
// sequence number come first in sequence order; unsequenced legacy rows
// follow in stored order. When a train has no stop rows at all, the
// routes table supplies a two-stop endpoint view.
func (h *StationHandler) TrainRoutes(c echo.Context) error {
	trainID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || trainID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid train id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Trains.GetByID(ctx, trainID); err != nil {
		if err == repository.ErrTrainNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	stops, err := h.Routes.ListStopsByTrain(ctx, trainID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if len(stops) == 0 {
		return h.endpointRoute(c, ctx, trainID)
	}

	booking.SortStops(stops)
	out := make([]routeStopResp, len(stops))
	for i, stop := range stops {
		out[i] = routeStopResp{
			StationName:    stop.StationName,
			SequenceNumber: stop.SequenceNumber,
			ArrivalTime:    offsetClock(stop.ArrivalOffsetMinutes),
			DepartureTime:  offsetClock(stop.DepartureOffsetMinutes),
			HaltMinutes:    stop.HaltMinutes,
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"train_id": trainID, "stops": out})
}

// endpointRoute builds the fallback stop list from the routes row when
// no per-stop data exists: origin at the base departure time, terminus
// offset by the route distance at a nominal 60 km/h.
func (h *StationHandler) endpointRoute(c echo.Context, ctx context.Context, trainID uint64) error {
	route, err := h.Routes.GetByTrain(ctx, trainID)
	if err != nil {
		if err == repository.ErrRouteNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "route not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	src, err := h.Stations.GetByID(ctx, route.SourceStationID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	dst, err := h.Stations.GetByID(ctx, route.DestinationStationID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	seqA, seqB := uint32(1), uint32(2)
	travelMinutes := int32(route.DistanceKM)
	stops := []routeStopResp{
		{StationName: src.StationName, SequenceNumber: &seqA, ArrivalTime: utils.ClockFromOffset(0), DepartureTime: utils.ClockFromOffset(0)},
		{StationName: dst.StationName, SequenceNumber: &seqB, ArrivalTime: utils.ClockFromOffset(travelMinutes), DepartureTime: utils.ClockFromOffset(travelMinutes)},
	}
	return c.JSON(http.StatusOK, echo.Map{"train_id": trainID, "stops": stops})
}

func offsetClock(offset *int32) string {
	if offset == nil {
		return ""
	}
	return utils.ClockFromOffset(*offset)
}
