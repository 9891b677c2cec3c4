package plan

import (
	"context"
	"time"
)

// Request describes the renovation a plan should cover.
type Request struct {
	BuildingType      string  `json:"building_type" form:"building_type" binding:"required,strNotEmpty"`
	Budget            float64 `json:"budget" form:"budget" binding:"required,gt=0"`
	RenovationType    string  `json:"renovation_type" form:"renovation_type" binding:"required,strNotEmpty"`
	AdditionalDetails string  `json:"additional_details" form:"additional_details"`
}

// Response is the fixed schema the provider's opaque JSON is validated into.
type Response struct {
	Plan           string    `json:"plan"`
	BuildingType   string    `json:"building_type"`
	Budget         float64   `json:"budget"`
	RenovationType string    `json:"renovation_type"`
	GeneratedAt    time.Time `json:"generated_at"`
}

// Generator produces a renovation plan from an external generative-language
// provider. It is constructed explicitly and injected; implementations must
// bound the external call with the request context.
type Generator interface {
	GeneratePlan(ctx context.Context, req Request) (*Response, error)
}
