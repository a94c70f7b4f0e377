package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/okarvik/chesskit/internal/adapter/consolepresenter"
	appcfg "github.com/okarvik/chesskit/internal/config"
	"github.com/okarvik/chesskit/internal/engine"
	"github.com/okarvik/chesskit/internal/msgcat"
	"github.com/okarvik/chesskit/internal/obslog"
	svcgame "github.com/okarvik/chesskit/internal/service/game"
)

func main() {
	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := obslog.InitFromEnv(); err != nil {
		log.Fatalf("log init error: %v", err)
	}
	defer func() { _ = obslog.L().Sync() }()

	cat, err := msgcat.New(cfg.MessageOverrideDir)
	if err != nil {
		log.Fatalf("message catalog error: %v", err)
	}

	svc := svcgame.NewService(
		svcgame.NewMemoryRepository(),
		obslog.L(),
		svcgame.Config{MaxSessions: cfg.MaxConcurrentGames},
	)
	formatter := consolepresenter.NewFormatter(cat)

	if err := run(svc, formatter, cfg); err != nil {
		log.Fatalf("cli error: %v", err)
	}
}

func run(svc *svcgame.Service, f *consolepresenter.Formatter, cfg *appcfg.AppConfig) error {
	ctx := context.Background()

	state, err := svc.Start(ctx)
	if err != nil {
		return err
	}
	sessionID := state.SessionUUID

	in := bufio.NewScanner(os.Stdin)
	fmt.Println(f.Banner())

	for {
		state, err = svc.State(ctx, sessionID)
		if err != nil {
			return err
		}
		fmt.Println(f.Turn(state))

		if !in.Scan() {
			break
		}
		fields := strings.Fields(in.Text())
		if len(fields) == 0 {
			fmt.Println(f.InvalidInput())
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			fmt.Println(f.Goodbye())
			return in.Err()
		case "help":
			fmt.Println(f.Help())
		case "state":
			fmt.Println(f.StateLine(state.State))
		case "colour", "color":
			fmt.Println(state.Turn)
		case "moves":
			if len(fields) != 2 {
				fmt.Println(f.InvalidInput())
				continue
			}
			moves, err := svc.PossibleMoves(ctx, sessionID, fields[1])
			if err != nil {
				fmt.Println(f.Error(err))
				continue
			}
			fmt.Println(f.Moves(fields[1], moves))
		case "piece":
			if len(fields) != 2 {
				fmt.Println(f.InvalidInput())
				continue
			}
			piece, err := svc.PieceAt(ctx, sessionID, fields[1])
			if err != nil {
				fmt.Println(f.Error(err))
				continue
			}
			fmt.Println(f.Piece(fields[1], piece))
		case "history":
			records, err := svc.RecentGames(ctx, cfg.HistoryLimit)
			if err != nil {
				fmt.Println(f.Error(err))
				continue
			}
			fmt.Println(f.History(records))
		case "resign":
			summary, err := svc.Resign(ctx, sessionID)
			if err != nil {
				fmt.Println(f.Error(err))
				continue
			}
			fmt.Println(f.Outcome(summary))
		case "new":
			fresh, err := svc.Start(ctx)
			if err != nil {
				fmt.Println(f.Error(err))
				continue
			}
			sessionID = fresh.SessionUUID
		default:
			if len(fields) != 2 {
				fmt.Println(f.InvalidInput())
				continue
			}
			summary, err := svc.Move(ctx, sessionID, fields[0], fields[1])
			if err != nil {
				fmt.Println(f.Error(err))
				continue
			}
			fmt.Println(f.MoveResult(summary))

			// A pawn on its last rank blocks everything until promoted.
			for summary.State.State == string(engine.StateWaitingOnPromotionChoice) {
				fmt.Println(f.PromotionPrompt())
				if !in.Scan() {
					return in.Err()
				}
				promoted, err := svc.Promote(ctx, sessionID, strings.TrimSpace(in.Text()))
				if err != nil {
					fmt.Println(f.Error(err))
					continue
				}
				summary = promoted
				fmt.Println(f.PromotionDone())
				if summary.Finished {
					fmt.Println(f.Outcome(summary))
				}
			}
		}
	}
	return in.Err()
}
