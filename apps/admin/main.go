package main

import (
	"context"
	"log"
	"os"

	"github.com/studyease/backend/core"
	"github.com/studyease/backend/core/quiz"
	aisvc "github.com/studyease/backend/services/ai"
	logsvc "github.com/studyease/backend/services/logger"
	"github.com/studyease/backend/storage/database"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	ctx := context.Background()

	// set up store
	store, err := database.Open(conf)
	if err != nil {
		logger.Fatal("setting up store", err)
	}

	var gen quiz.Generator
	if gemini, err := aisvc.NewGeminiGenerator(ctx, conf.GenAI); err != nil {
		gen = aisvc.NewUnavailableGenerator(err)
	} else {
		gen = gemini
	}

	// start CLI
	cli := commandLine{
		store:   store,
		quizSvc: quiz.NewService(store.Quizzes, gen, logger),
		out:     os.Stdout,
	}
	err = cli.run(ctx, os.Args)
	if cErr := store.Close(ctx); cErr != nil {
		logger.Error("closing store", cErr)
	}
	if err != nil {
		if err != errHelp {
			logger.Error("admin command failed", err)
		}
		os.Exit(1)
	}
}
