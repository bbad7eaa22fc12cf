package cmd

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"boardrank/internal/config"
	"boardrank/internal/models"
	"boardrank/internal/repository"
	"boardrank/internal/services"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// seedCmd loads a small demo data set: three users, five links and ten
// votes. Votes go through the scoring engine so the denormalized point
// totals come out consistent with the ratings.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo users, links and votes into the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		db, err := repository.InitDB(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}

		if strings.HasPrefix(cfg.DatabaseURL, "postgres") {
			if err := repository.RunMigrations(cfg.DatabaseURL, ""); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
		} else {
			if err := repository.AutoMigrate(db); err != nil {
				return fmt.Errorf("auto-migration failed: %w", err)
			}
		}

		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		if err := seedDemoData(db, logger, cfg.PageSize); err != nil {
			return err
		}

		log.Println("Seeded 3 users, 5 links, 10 votes")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func seedDemoData(db *gorm.DB, logger *slog.Logger, pageSize int) error {
	auditService := services.NewAuditService(db, logger)
	scoringService := services.NewScoringService(db, auditService)
	boardService := services.NewBoardService(db, auditService, pageSize)

	users := make(map[string]*models.User)
	for _, reg := range []struct {
		username string
		password string
	}{
		{"alice", "pass"},
		{"bob", "pass"},
		{"carol", "pass"},
	} {
		user, err := registerSeedUser(db, reg.username, reg.password)
		if err != nil {
			return err
		}
		users[reg.username] = user
	}

	links := make([]*models.Link, 0, 5)
	for _, l := range []struct {
		author      string
		title       string
		description string
	}{
		{"alice", "Boardgame 1", "Awesome game!"},
		{"bob", "Boardgame 2", "Great strategy!"},
		{"bob", "Boardgame 3", "Party favorite"},
		{"carol", "Boardgame 4", "Relaxing play"},
		{"alice", "Boardgame 5", "Underrated gem"},
	} {
		link, err := boardService.CreateLink(services.LinkDTO{
			UserID:      users[l.author].ID,
			Title:       l.title,
			Description: l.description,
		})
		if err != nil {
			return fmt.Errorf("failed to seed link %q: %w", l.title, err)
		}
		links = append(links, link)
	}

	// No rater owns the link they vote on; the scoring engine rejects
	// self-votes.
	for _, v := range []struct {
		rater string
		link  int
		value int
	}{
		{"alice", 1, 1}, {"alice", 2, -1}, {"alice", 3, 1},
		{"bob", 0, 1}, {"bob", 4, 1}, {"bob", 3, -1},
		{"carol", 0, -1}, {"carol", 1, 1}, {"carol", 2, 1}, {"carol", 3, 1},
	} {
		if _, err := scoringService.SubmitVote(services.VoteDTO{
			RaterID: users[v.rater].ID,
			LinkID:  links[v.link].ID,
			Value:   v.value,
		}); err != nil {
			return fmt.Errorf("failed to seed vote by %s: %w", v.rater, err)
		}
	}

	return nil
}
