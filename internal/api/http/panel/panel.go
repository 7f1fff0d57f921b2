package panel

import (
	"context"
	"encoding/json"
	"errors"
	"image"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/oshokin/catpoint/internal/classifier"
	domain "github.com/oshokin/catpoint/internal/domain/security"
	"github.com/oshokin/catpoint/internal/logger"
	"github.com/oshokin/catpoint/internal/repository/state"
)

// Service abstracts the engine operations the panel depends on.
type Service interface {
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
	AlarmStatus(ctx context.Context) (domain.AlarmStatus, error)
	SetArmingStatus(ctx context.Context, status domain.ArmingStatus) error
	Sensors(ctx context.Context) ([]*domain.Sensor, error)
	Sensor(ctx context.Context, id string) (*domain.Sensor, error)
	AddSensor(ctx context.Context, sensor *domain.Sensor) error
	RemoveSensor(ctx context.Context, sensor *domain.Sensor) error
	SetSensorActive(ctx context.Context, id string, active bool) (*domain.Sensor, error)
	ProcessImage(ctx context.Context, img image.Image) error
	CatDetected() bool
	NotifySensorsChanged(ctx context.Context)
}

// errBadRequestBody is returned when a JSON body cannot be decoded.
var errBadRequestBody = errors.New("malformed request body")

type (
	statusResponse struct {
		Timestamp         time.Time        `json:"timestamp"`
		AlarmStatus       string           `json:"alarm_status"`
		AlarmDescription  string           `json:"alarm_description"`
		AlarmColor        string           `json:"alarm_color"`
		ArmingStatus      string           `json:"arming_status"`
		ArmingDescription string           `json:"arming_description"`
		CatDetected       bool             `json:"cat_detected"`
		Sensors           []*domain.Sensor `json:"sensors"`
	}

	armingRequest struct {
		ArmingStatus string `json:"arming_status"`
	}

	sensorsResponse struct {
		Sensors []*domain.Sensor `json:"sensors"`
	}

	addSensorRequest struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}

	activeRequest struct {
		Active bool `json:"active"`
	}

	imageResponse struct {
		CatDetected bool   `json:"cat_detected"`
		AlarmStatus string `json:"alarm_status"`
	}

	errorResponse struct {
		Error string `json:"error"`
	}
)

// api holds the HTTP handlers.
type api struct {
	service Service
}

// NewRouter registers the panel routes.
func NewRouter(service Service) *mux.Router {
	a := &api{service: service}

	r := mux.NewRouter()

	r.HandleFunc("/health", a.health).Methods(http.MethodGet)
	r.HandleFunc("/status", a.status).Methods(http.MethodGet)
	r.HandleFunc("/arming", a.setArming).Methods(http.MethodPut)
	r.HandleFunc("/sensors", a.listSensors).Methods(http.MethodGet)
	r.HandleFunc("/sensors", a.addSensor).Methods(http.MethodPost)
	r.HandleFunc("/sensors/{id}", a.removeSensor).Methods(http.MethodDelete)
	r.HandleFunc("/sensors/{id}/active", a.setSensorActive).Methods(http.MethodPut)
	r.HandleFunc("/images", a.processImage).Methods(http.MethodPost)

	return r
}

// NewHandler wraps the router with panic recovery and request logging.
func NewHandler(ctx context.Context, service Service) http.Handler {
	recovery := handlers.RecoveryHandler()(NewRouter(service))

	return handlers.CustomLoggingHandler(io.Discard, recovery, func(_ io.Writer, params handlers.LogFormatterParams) {
		logger.DebugKV(ctx, "HTTP request served",
			"method", params.Request.Method,
			"path", params.URL.Path,
			"status", params.StatusCode,
			"size", params.Size,
			"remote_addr", params.Request.RemoteAddr)
	})
}

func (a *api) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *api) status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snapshot, err := a.service.Snapshot(ctx)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, toStatusResponse(snapshot))
}

func (a *api) setArming(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req armingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	arming, err := domain.ParseArmingStatus(req.ArmingStatus)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if err = a.service.SetArmingStatus(ctx, arming); err != nil {
		writeError(ctx, w, err)

		return
	}

	a.status(w, r)
}

func (a *api) listSensors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sensors, err := a.service.Sensors(ctx)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, sensorsResponse{Sensors: sensors})
}

func (a *api) addSensor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req addSensorRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	sensorType, err := domain.ParseSensorType(req.Type)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	sensor, err := domain.NewSensor(req.Name, sensorType)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if err = a.service.AddSensor(ctx, sensor); err != nil {
		writeError(ctx, w, err)

		return
	}

	a.service.NotifySensorsChanged(ctx)

	writeJSON(ctx, w, http.StatusCreated, sensor)
}

func (a *api) removeSensor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sensor, err := a.service.Sensor(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if err = a.service.RemoveSensor(ctx, sensor); err != nil {
		writeError(ctx, w, err)

		return
	}

	a.service.NotifySensorsChanged(ctx)

	w.WriteHeader(http.StatusNoContent)
}

func (a *api) setSensorActive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req activeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	sensor, err := a.service.SetSensorActive(ctx, mux.Vars(r)["id"], req.Active)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	a.service.NotifySensorsChanged(ctx)

	writeJSON(ctx, w, http.StatusOK, sensor)
}

func (a *api) processImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, err := io.ReadAll(io.LimitReader(r.Body, classifier.MaxImageSize+1))
	if err != nil {
		writeError(ctx, w, errors.Join(errBadRequestBody, err))

		return
	}

	img, err := classifier.DecodeImage(data)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if err = a.service.ProcessImage(ctx, img); err != nil {
		writeError(ctx, w, err)

		return
	}

	alarm, err := a.service.AlarmStatus(ctx)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, imageResponse{
		CatDetected: a.service.CatDetected(),
		AlarmStatus: string(alarm),
	})
}

func decodeJSON(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		return errors.Join(errBadRequestBody, err)
	}

	return nil
}

// httpStatus maps engine errors to HTTP status codes.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, errBadRequestBody),
		errors.Is(err, domain.ErrUnknownAlarmStatus),
		errors.Is(err, domain.ErrUnknownArmingStatus),
		errors.Is(err, domain.ErrUnknownSensorType),
		errors.Is(err, domain.ErrEmptySensorName),
		errors.Is(err, classifier.ErrNilImage),
		errors.Is(err, classifier.ErrImageTooLarge),
		errors.Is(err, classifier.ErrUnsupportedImage):
		return http.StatusBadRequest
	case errors.Is(err, state.ErrSensorNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	code := httpStatus(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		logger.ErrorKV(ctx, "HTTP request failed", "error", err)

		message = "internal error"
	}

	writeJSON(ctx, w, code, errorResponse{Error: message})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.WarnKV(ctx, "Failed to write HTTP response", "error", err)
	}
}

func toStatusResponse(snapshot *domain.Snapshot) *statusResponse {
	alarm := domain.DescribeAlarm(snapshot.AlarmStatus)

	return &statusResponse{
		Timestamp:         snapshot.Timestamp,
		AlarmStatus:       string(snapshot.AlarmStatus),
		AlarmDescription:  alarm.Description,
		AlarmColor:        alarm.Color,
		ArmingStatus:      string(snapshot.ArmingStatus),
		ArmingDescription: domain.DescribeArming(snapshot.ArmingStatus).Description,
		CatDetected:       snapshot.CatDetected,
		Sensors:           snapshot.Sensors,
	}
}
