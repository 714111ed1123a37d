package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/studyease/backend/core/quiz"
	"github.com/studyease/backend/storage/database"
)

var (
	readFileFunc = os.ReadFile // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	store   *database.Store
	quizSvc *quiz.Service
	out     io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  ping - check the store connection")
	fmt.Fprintln(cli.out, "  seedquizzes -file FILE - add the questions of a JSON file to the quiz bank")
	fmt.Fprintln(cli.out, "  generatequiz -subject SUBJECT -difficulty DIFFICULTY [-save] - generate a quiz set")
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	seedCmd := flag.NewFlagSet("seedquizzes", flag.ContinueOnError)
	seedCmd.SetOutput(cli.out)
	seedFile := seedCmd.String("file", "", "JSON file holding an array of quiz questions.")

	genCmd := flag.NewFlagSet("generatequiz", flag.ContinueOnError)
	genCmd.SetOutput(cli.out)
	genSubject := genCmd.String("subject", "", "The quiz subject.")
	genDifficulty := genCmd.String("difficulty", "", "The quiz difficulty.")
	genSave := genCmd.Bool("save", false, "Add the generated questions to the quiz bank.")

	switch args[1] {
	case "ping":
		if err := cli.store.Ping(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cli.out, "store is up")
		return nil

	case "seedquizzes":
		if err := seedCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *seedFile == "" {
			seedCmd.Usage()
			return errHelp
		}
		return cli.seedQuizzes(ctx, *seedFile)

	case "generatequiz":
		if err := genCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *genSubject == "" || *genDifficulty == "" {
			genCmd.Usage()
			return errHelp
		}
		return cli.generateQuiz(ctx, *genSubject, *genDifficulty, *genSave)

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) seedQuizzes(ctx context.Context, path string) error {
	data, err := readFileFunc(path)
	if err != nil {
		return errors.Wrap(err, "reading seed file")
	}
	var quizzes []quiz.StoredQuiz
	if err = json.Unmarshal(data, &quizzes); err != nil {
		return errors.Wrap(err, "decoding seed file")
	}

	for i, q := range quizzes {
		if err = checkSeed(q); err != nil {
			return errors.Wrapf(err, "quiz #%d", i+1)
		}
	}
	for _, q := range quizzes {
		if _, err = cli.store.Quizzes.CreateQuiz(ctx, q); err != nil {
			return errors.Wrap(err, "seeding quiz bank")
		}
	}
	fmt.Fprintf(cli.out, "%d quizzes added\n", len(quizzes))
	return nil
}

func checkSeed(q quiz.StoredQuiz) error {
	switch {
	case strings.TrimSpace(q.Subject) == "":
		return errors.New("subject is required")
	case strings.TrimSpace(q.Difficulty) == "":
		return errors.New("difficulty is required")
	case strings.TrimSpace(q.Question) == "":
		return errors.New("question is required")
	}
	if q.CorrectAnswer == "" {
		return nil
	}
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return nil
		}
	}
	return errors.New("correctAnswer must be one of the options")
}

func (cli *commandLine) generateQuiz(ctx context.Context, subject, difficulty string, save bool) error {
	req := quiz.GenerateRequest{Subject: subject, Difficulty: difficulty}
	set, err := cli.quizSvc.Generate(ctx, req)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cli.out)
	enc.SetIndent("", "  ")
	if err = enc.Encode(set); err != nil {
		return err
	}
	if !save {
		return nil
	}

	for _, q := range set.Quiz {
		_, err = cli.store.Quizzes.CreateQuiz(ctx, quiz.StoredQuiz{
			Subject:       req.Subject,
			Difficulty:    req.Difficulty,
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
		if err != nil {
			return errors.Wrap(err, "saving generated quiz")
		}
	}
	fmt.Fprintf(cli.out, "%d quizzes added\n", len(set.Quiz))
	return nil
}
