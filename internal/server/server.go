// Package server hosts the small HTTP surface that ships next to the seeder.
package server

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gofiber/fiber/v2"
)

const Greeting = "HELLO WORLD!!!"

type Server struct {
	app  *fiber.App
	port int
}

func NewServer(port int) *Server {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	s := &Server{app: app, port: port}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.app.Get("/hello", func(c *fiber.Ctx) error {
		return c.SendString(Greeting)
	})
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	color.Green("🚀 listening at http://localhost:%d", s.port)
	return s.app.Listen(fmt.Sprintf(":%d", s.port))
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
