package api

import (
	"time"

	domain "github.com/example/tareas-api/domain/task"
	"github.com/example/tareas-api/modules/task"
	"github.com/example/tareas-api/pkg/jsontime"
	"github.com/example/tareas-api/pkg/optional"
)

// CreateTareaRequest is the HTTP request for creating a task. The wire
// vocabulary is Spanish, matching the public API contract.
type CreateTareaRequest struct {
	Titulo                     string            `json:"titulo"`
	Descripcion                *string           `json:"descripcion"`
	FechaFinalizacionPropuesta *jsontime.UTCTime `json:"fecha_finalizacion_propuesta"`
}

// UpdateTareaRequest is the HTTP request for a partial update. Every
// field is tri-state: omitting a field leaves it untouched, while an
// explicit null is meaningful (it clears the description, or the
// completion timestamp under the rules in the domain layer).
type UpdateTareaRequest struct {
	Titulo                 optional.Value[string]           `json:"titulo"`
	Descripcion            optional.Value[string]           `json:"descripcion"`
	EstablecerCompletada   optional.Value[bool]             `json:"establecer_completada"`
	NuevaFechaFinalizacion optional.Value[jsontime.UTCTime] `json:"nueva_fecha_finalizacion"`
}

// TareaResponse is the HTTP representation of a task. Completada is
// derived from the stored timestamps at serialization time, never
// stored.
type TareaResponse struct {
	ID                int               `json:"id"`
	Titulo            string            `json:"titulo"`
	Descripcion       *string           `json:"descripcion"`
	FechaCreacion     jsontime.UTCTime  `json:"fecha_creacion"`
	FechaFinalizacion *jsontime.UTCTime `json:"fecha_finalizacion"`
	Completada        bool              `json:"completada"`
}

// ErrorResponse is the HTTP response for errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse is the HTTP response for the health check.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// toTareaResponse shapes a service response for the wire, evaluating
// the derived completion flag against now.
func toTareaResponse(t *task.TaskResponse, now time.Time) TareaResponse {
	resp := TareaResponse{
		ID:            t.ID,
		Titulo:        t.Title,
		Descripcion:   t.Description,
		FechaCreacion: jsontime.New(t.CreatedAt),
		Completada:    domain.CompletedBy(t.CompletedAt, now),
	}
	if t.CompletedAt != nil {
		f := jsontime.New(*t.CompletedAt)
		resp.FechaFinalizacion = &f
	}
	return resp
}

// toUpdateTaskRequest flattens the tri-state HTTP fields into the
// service DTO's flag-plus-pointer representation.
func toUpdateTaskRequest(id int, body UpdateTareaRequest) *task.UpdateTaskRequest {
	return &task.UpdateTaskRequest{
		TaskID:           id,
		HasTitle:         body.Titulo.Set,
		Title:            body.Titulo.Ptr(),
		HasDescription:   body.Descripcion.Set,
		Description:      body.Descripcion.Ptr(),
		HasSetCompleted:  body.EstablecerCompletada.Set,
		SetCompleted:     body.EstablecerCompletada.Ptr(),
		HasNewCompletion: body.NuevaFechaFinalizacion.Set,
		NewCompletion:    body.NuevaFechaFinalizacion.Ptr(),
	}
}
