package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/shirshiz/studio-crm/internal/snapshot"
)

type HealthHandler struct {
	DB        *mongo.Database
	RabbitMQ  *amqp091.Connection
	Holder    *snapshot.Holder
	StartTime time.Time
}

type HealthResponse struct {
	Status          string            `json:"status"`
	Version         string            `json:"version"`
	Uptime          string            `json:"uptime"`
	SnapshotVersion uint64            `json:"snapshotVersion"`
	Dependencies    map[string]string `json:"dependencies"`
}

func NewHealthHandler(db *mongo.Database, rabbitMQ *amqp091.Connection, holder *snapshot.Holder) *HealthHandler {
	return &HealthHandler{
		DB:        db,
		RabbitMQ:  rabbitMQ,
		Holder:    holder,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	// Check MongoDB
	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.DB.Client().Ping(ctx, readpref.Primary()); err != nil {
			deps["mongodb"] = fmt.Sprintf("unhealthy: %v", err)
		} else {
			deps["mongodb"] = "healthy"
		}
	} else {
		deps["mongodb"] = "not configured"
	}

	// Check RabbitMQ
	if h.RabbitMQ != nil {
		if h.RabbitMQ.IsClosed() {
			deps["rabbitmq"] = "unhealthy: connection closed"
		} else {
			deps["rabbitmq"] = "healthy"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	// Determine overall status
	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	uptime := time.Since(h.StartTime).Round(time.Second).String()

	response := HealthResponse{
		Status:          status,
		Version:         "1.0.0",
		Uptime:          uptime,
		SnapshotVersion: h.Holder.Version(),
		Dependencies:    deps,
	}

	w.Header().Set("Content-Type", "application/json")
	if status == "degraded" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	json.NewEncoder(w).Encode(response)
}
