// Package server exposes the transformation registry over HTTP. Single
// transformations run on POST /transform; POST /batch runs many items with
// bounded concurrency.
package server

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/log"
	"github.com/google/uuid"

	"github.com/manglekit/mangle/pkg/config"
	"github.com/manglekit/mangle/pkg/registry"
	"github.com/manglekit/mangle/pkg/rng"
)

// Version is reported by GET /health and the CLI.
const Version = "0.1.0"

// Server wraps the fiber app with the registry and config it serves.
type Server struct {
	cfg *config.Config
	reg *registry.Registry
	app *fiber.App
	sem *semaphore
}

type transformRequest struct {
	Function string  `json:"function"`
	Input    *string `json:"input"`
	Arg      string  `json:"arg,omitempty"`
	Seed     *uint64 `json:"seed,omitempty"`
}

type transformResponse struct {
	ID       string `json:"id"`
	Function string `json:"function"`
	Input    string `json:"input"`
	Output   string `json:"output"`
}

type batchRequest struct {
	Items []transformRequest `json:"items"`
}

type batchResult struct {
	Function string `json:"function"`
	Output   string `json:"output,omitempty"`
	Error    string `json:"error,omitempty"`
}

type batchResponse struct {
	ID      string        `json:"id"`
	Results []batchResult `json:"results"`
}

type modeInfo struct {
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases,omitempty"`
	Family      string   `json:"family"`
	Description string   `json:"description"`
	ArgName     string   `json:"arg_name,omitempty"`
	ReadsInput  bool     `json:"reads_input"`
}

// New builds a server around cfg. Routes are registered immediately; the
// server does not listen until Listen is called.
func New(cfg *config.Config) *Server {
	s := &Server{
		cfg: cfg,
		reg: registry.Get(),
		sem: newSemaphore(cfg.BatchConcurrency),
	}
	s.app = fiber.New(fiber.Config{
		AppName:      "mangle",
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BodyLimit:    cfg.BodyLimit,
	})
	s.routes()
	return s
}

// App returns the underlying fiber app, used by tests to issue in-process
// requests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until the listener fails or the app is shut down.
func (s *Server) Listen() error {
	log.Infof("mangle %s listening on %s (%d transformations)",
		Version, s.cfg.ListenAddr, s.reg.Count())
	return s.app.Listen(s.cfg.ListenAddr)
}

// Shutdown gracefully stops the app.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) routes() {
	s.app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":          "ok",
			"version":         Version,
			"transformations": s.reg.Count(),
		})
	})

	s.app.Get("/modes", func(c fiber.Ctx) error {
		family := c.Query("family")
		var ts []*registry.Transformation
		if family != "" {
			ts = s.reg.ByFamily(registry.Family(family))
		} else {
			ts = s.reg.All()
		}
		modes := make([]modeInfo, 0, len(ts))
		for _, t := range ts {
			modes = append(modes, modeInfo{
				Name:        t.Name,
				Aliases:     t.Aliases,
				Family:      string(t.Family),
				Description: t.Description,
				ArgName:     t.ArgName,
				ReadsInput:  t.ReadsInput,
			})
		}
		return c.JSON(fiber.Map{"modes": modes})
	})

	s.app.Post("/transform", func(c fiber.Ctx) error {
		var req transformRequest
		if err := c.Bind().Body(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
		}
		if req.Function == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "function field is required"})
		}
		input, err := s.inputOf(req)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		if len(input) > s.cfg.MaxInputBytes {
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
				"error": "input exceeds configured maximum",
			})
		}

		output, err := s.reg.Apply(sourceFor(req.Seed), req.Function, input, req.Arg)
		if err != nil {
			return s.transformError(c, err)
		}
		return c.JSON(transformResponse{
			ID:       uuid.NewString(),
			Function: req.Function,
			Input:    input,
			Output:   output,
		})
	})

	s.app.Post("/batch", func(c fiber.Ctx) error {
		var req batchRequest
		if err := c.Bind().Body(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
		}
		if len(req.Items) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "items field is required"})
		}
		if len(req.Items) > s.cfg.MaxBatchItems {
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
				"error": "batch exceeds configured maximum",
			})
		}

		results := make([]batchResult, len(req.Items))
		var wg sync.WaitGroup
		for i, item := range req.Items {
			if err := s.sem.acquire(c.Context()); err != nil {
				results[i] = batchResult{Function: item.Function, Error: "request cancelled"}
				continue
			}
			wg.Add(1)
			go func(i int, item transformRequest) {
				defer wg.Done()
				defer s.sem.release()
				results[i] = s.runItem(item)
			}(i, item)
		}
		wg.Wait()
		return c.JSON(batchResponse{ID: uuid.NewString(), Results: results})
	})
}

func (s *Server) runItem(item transformRequest) batchResult {
	if item.Function == "" {
		return batchResult{Function: item.Function, Error: "function field is required"}
	}
	input, err := s.inputOf(item)
	if err != nil {
		return batchResult{Function: item.Function, Error: err.Error()}
	}
	if len(input) > s.cfg.MaxInputBytes {
		return batchResult{Function: item.Function, Error: "input exceeds configured maximum"}
	}
	output, err := s.reg.Apply(sourceFor(item.Seed), item.Function, input, item.Arg)
	if err != nil {
		return batchResult{Function: item.Function, Error: err.Error()}
	}
	return batchResult{Function: item.Function, Output: output}
}

// inputOf unwraps the optional input, requiring it when the resolved
// transformation reads its input. Unknown functions pass through so Apply
// reports them.
func (s *Server) inputOf(req transformRequest) (string, error) {
	if req.Input == nil {
		if t, ok := s.reg.Resolve(req.Function); ok && t.ReadsInput {
			return "", fmt.Errorf("input field is required for %s", t.Name)
		}
		return "", nil
	}
	return *req.Input, nil
}

// transformError maps registry failures onto status codes: unresolvable
// names are 404, selector errors are 400.
func (s *Server) transformError(c fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest
	if errors.Is(err, registry.ErrUnknownTransformation) {
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func sourceFor(seed *uint64) *rng.Rng {
	if seed != nil {
		return rng.NewSeeded(*seed)
	}
	return rng.New()
}
