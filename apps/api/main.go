package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"

	echoapi "github.com/studyease/backend/apps/api/echo"
	"github.com/studyease/backend/core"
	"github.com/studyease/backend/core/budget"
	"github.com/studyease/backend/core/planner"
	"github.com/studyease/backend/core/quiz"
	"github.com/studyease/backend/core/schedule"
	aisvc "github.com/studyease/backend/services/ai"
	logsvc "github.com/studyease/backend/services/logger"
	"github.com/studyease/backend/storage/database"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	dbLogger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	dbLogger.Enable(!conf.Debug)

	// set up store
	store, err := database.Open(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up store: %v", err), err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()
		if err = store.Close(ctx); err != nil {
			dbLogger.Error("Failed to close", err)
		}
	}()

	// set up generator
	var gen quiz.Generator
	gemini, err := aisvc.NewGeminiGenerator(context.Background(), conf.GenAI)
	if err != nil {
		logger.Warn(fmt.Sprintf("quiz generation disabled: %v", err), err)
		gen = aisvc.NewUnavailableGenerator(err)
	} else {
		logger.Info(fmt.Sprintf("quiz generation enabled : model %q", gemini.Model()))
		gen = gemini
	}

	// set up services
	updOpts := core.UpdateOptions{Upsert: conf.Store.UpsertOnUpdate}
	scheduleSvc := schedule.NewService(store.Classes, updOpts)
	budgetSvc := budget.NewService(store.Budgets, logger)
	plannerSvc := planner.NewService(store.Plans, updOpts)
	quizSvc := quiz.NewService(store.Quizzes, gen, logger)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)
	expvar.NewString("store").Set(conf.Store.Driver)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:        conf,
			Logger:      logger,
			ScheduleSvc: scheduleSvc,
			BudgetSvc:   budgetSvc,
			PlannerSvc:  plannerSvc,
			QuizSvc:     quizSvc,
			Validate:    validate,
			Translator:  translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
