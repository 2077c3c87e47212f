// Package registry aggregates BCPs into a single dispatchable tool surface.
// It owns the one propagation convention for failures: handlers return
// errors, the registry classifies them and renders the uniform envelope.
package registry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/profsynapse/hubspot-mcp/internal/domain"
	"github.com/profsynapse/hubspot-mcp/internal/enhancer"
)

// UsageRecorder receives dispatch outcomes for analytics logging.
// Implementations must tolerate being called concurrently.
type UsageRecorder interface {
	RecordToolCall(ctx context.Context, domainName, tool string, duration time.Duration, success bool)
	RecordError(ctx context.Context, domainName, tool, code, message string)
}

// registeredTool pairs a tool definition with the BCP it came from.
type registeredTool struct {
	def       domain.ToolDefinition
	bcpDomain string
}

// Registry maps tool names to handlers across all registered BCPs.
// Registration happens once at startup; Dispatch is read-only afterwards,
// so no locking is needed on the hot path.
type Registry struct {
	tools    map[string]registeredTool
	order    []string
	domains  map[string]struct{}
	enhancer *enhancer.Enhancer
	recorder UsageRecorder
	logger   *slog.Logger
	tracer   trace.Tracer
}

// Option configures a Registry.
type Option func(*Registry)

// WithRecorder wires an analytics recorder into dispatch.
func WithRecorder(rec UsageRecorder) Option {
	return func(r *Registry) { r.recorder = rec }
}

// New creates an empty registry. The enhancer is required: suggestion
// injection is part of the dispatch contract, not an optional extra.
func New(enh *enhancer.Enhancer, logger *slog.Logger, opts ...Option) *Registry {
	r := &Registry{
		tools:    make(map[string]registeredTool),
		domains:  make(map[string]struct{}),
		enhancer: enh,
		logger:   logger.With("component", "registry"),
		tracer:   otel.Tracer("hubspot-mcp/registry"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a BCP's tools to the registry. A duplicate domain or a tool
// name collision (within the pack or against any previously registered pack)
// fails the whole registration.
func (r *Registry) Register(bcp domain.BCP) error {
	if bcp.Domain == "" {
		return fmt.Errorf("bcp has empty domain")
	}
	if _, exists := r.domains[bcp.Domain]; exists {
		return fmt.Errorf("duplicate bcp domain %q", bcp.Domain)
	}
	for _, tool := range bcp.Tools {
		if tool.Name == "" {
			return fmt.Errorf("bcp %q contains a tool with an empty name", bcp.Domain)
		}
		if tool.Handler == nil {
			return fmt.Errorf("tool %q has no handler", tool.Name)
		}
		if existing, collision := r.tools[tool.Name]; collision {
			return fmt.Errorf("tool name collision: %q registered by both %q and %q",
				tool.Name, existing.bcpDomain, bcp.Domain)
		}
	}
	// Second pass so a mid-pack failure leaves the registry untouched.
	for _, tool := range bcp.Tools {
		r.tools[tool.Name] = registeredTool{def: tool, bcpDomain: bcp.Domain}
		r.order = append(r.order, tool.Name)
	}
	r.domains[bcp.Domain] = struct{}{}
	r.logger.Info("Registered BCP", slog.String("domain", bcp.Domain), slog.Int("tools", len(bcp.Tools)))
	return nil
}

// Tools returns all registered tool definitions in registration order.
func (r *Registry) Tools() []domain.ToolDefinition {
	list := make([]domain.ToolDefinition, 0, len(r.order))
	for _, name := range r.order {
		list = append(list, r.tools[name].def)
	}
	return list
}

// Dispatch resolves a tool by name, validates params against its input
// schema, invokes the handler, and enhances the result with suggestions.
// Failures come back as *domain.BcpError: unknown name is NOT_FOUND, schema
// rejection is VALIDATION_ERROR raised before the handler ever runs.
func (r *Registry) Dispatch(ctx context.Context, name string, params map[string]any) (any, error) {
	ctx, span := r.tracer.Start(ctx, "tool.dispatch",
		trace.WithAttributes(attribute.String("tool.name", name)))
	defer span.End()

	log := r.logger.With(slog.String("tool", name))
	start := time.Now()

	tool, ok := r.tools[name]
	if !ok {
		log.Warn("Unknown tool requested")
		err := domain.NewError(domain.CodeNotFound, fmt.Sprintf("tool %q is not registered", name))
		r.recordFailure(ctx, "", name, err)
		return nil, err
	}

	span.SetAttributes(attribute.String("tool.domain", tool.bcpDomain))
	if params == nil {
		params = map[string]any{}
	}

	if err := tool.def.InputSchema.Validate(params); err != nil {
		log.Warn("Input validation failed", slog.Any("error", err))
		be := domain.WrapError(err)
		r.recordFailure(ctx, tool.bcpDomain, name, be)
		return nil, be
	}

	result, err := tool.def.Handler(ctx, params)
	if err != nil {
		be := domain.WrapError(err)
		log.Error("Tool invocation failed",
			slog.String("code", string(be.Code)),
			slog.Int("status", be.HTTPStatus),
			slog.String("message", be.Message))
		r.recordFailure(ctx, tool.bcpDomain, name, be)
		return nil, be
	}

	enhanced := r.enhance(result, tool, params)
	if r.recorder != nil {
		r.recorder.RecordToolCall(ctx, tool.bcpDomain, name, time.Since(start), true)
	}
	log.Debug("Tool invocation succeeded", slog.Duration("duration", time.Since(start)))
	return enhanced, nil
}

// enhance injects suggestions. Map results gain a suggestions key in place;
// anything else is wrapped only when there is something to suggest.
func (r *Registry) enhance(result any, tool registeredTool, params map[string]any) any {
	if m, ok := result.(map[string]any); ok {
		return r.enhancer.Enhance(m, tool.def.Operation, params, tool.bcpDomain)
	}
	suggestions := r.enhancer.Suggest(tool.def.Operation, params, tool.bcpDomain)
	if len(suggestions) == 0 {
		return result
	}
	return map[string]any{"result": result, "suggestions": suggestions}
}

func (r *Registry) recordFailure(ctx context.Context, domainName, tool string, be *domain.BcpError) {
	if r.recorder == nil {
		return
	}
	r.recorder.RecordToolCall(ctx, domainName, tool, 0, false)
	r.recorder.RecordError(ctx, domainName, tool, string(be.Code), be.Message)
}

// Envelope is the uniform failure shape returned to the agent.
type Envelope struct {
	Error EnvelopeError `json:"error"`
}

// EnvelopeError carries the classified failure fields.
type EnvelopeError struct {
	Message string           `json:"message"`
	Code    domain.ErrorCode `json:"code"`
	Status  int              `json:"status"`
}

// FailureEnvelope renders any dispatch error into the uniform envelope.
func FailureEnvelope(err error) Envelope {
	be := domain.WrapError(err)
	return Envelope{Error: EnvelopeError{Message: be.Message, Code: be.Code, Status: be.HTTPStatus}}
}
