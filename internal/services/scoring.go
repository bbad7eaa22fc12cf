package services

import (
	"errors"
	"fmt"

	"boardrank/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvalidVote  = errors.New("vote value must be +1 or -1")
	ErrSelfVote     = errors.New("you cannot rate your own link")
	ErrLinkNotFound = errors.New("link not found")
)

type VoteDTO struct {
	RaterID   uint
	LinkID    uint
	Value     int
	IPAddress string // For Audit Log
}

// VoteResult carries the freshly recomputed display values so the
// caller does not need a second read after voting.
type VoteResult struct {
	NewRating int `json:"new_rating"`
	NewPoints int `json:"new_points"`
}

type LeaderboardEntry struct {
	Username        string `json:"username"`
	BoardgamePoints int    `json:"boardgame_points"`
}

type ScoringService struct {
	db           *gorm.DB
	auditService *AuditService
}

func NewScoringService(db *gorm.DB, auditService *AuditService) *ScoringService {
	return &ScoringService{
		db:           db,
		auditService: auditService,
	}
}

// SubmitVote records or updates a user's vote on a link and keeps the
// author's denormalized point total in step with it. A rating is a
// single mutable row per (rater, link): the first vote creates it,
// voting the same direction again is a no-op, and voting the other
// direction flips it in place. All writes happen in one transaction so
// the rating and the point delta can never commit separately.
func (s *ScoringService) SubmitVote(dto VoteDTO) (*VoteResult, error) {
	if dto.Value != 1 && dto.Value != -1 {
		return nil, ErrInvalidVote
	}

	var result VoteResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var link models.Link
		if err := forUpdate(tx).First(&link, dto.LinkID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLinkNotFound
			}
			return err
		}

		if link.UserID == dto.RaterID {
			return ErrSelfVote
		}

		var rating models.Rating
		err := forUpdate(tx).Where("user_id = ? AND link_id = ?", dto.RaterID, dto.LinkID).First(&rating).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			rating = models.Rating{UserID: dto.RaterID, LinkID: dto.LinkID, Value: dto.Value}
			if err := tx.Create(&rating).Error; err != nil {
				return err
			}
			if err := adjustPoints(tx, link.UserID, dto.Value); err != nil {
				return err
			}
		case err != nil:
			return err
		case rating.Value == dto.Value:
			// Re-click of the same direction: no new row, no point change.
		default:
			// Flip: net point change is new minus old, i.e. 2 * Value.
			if err := tx.Model(&models.Rating{}).Where("id = ?", rating.ID).
				Update("value", dto.Value).Error; err != nil {
				return err
			}
			if err := adjustPoints(tx, link.UserID, dto.Value-rating.Value); err != nil {
				return err
			}
		}

		aggregate, err := aggregateRating(tx, dto.LinkID)
		if err != nil {
			return err
		}

		var author models.User
		if err := tx.First(&author, link.UserID).Error; err != nil {
			return err
		}

		result = VoteResult{NewRating: aggregate, NewPoints: author.BoardgamePoints}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.auditService.LogAction(&dto.RaterID, "RATE_LINK", fmt.Sprint(dto.LinkID), map[string]interface{}{
		"value": dto.Value,
	}, dto.IPAddress)

	return &result, nil
}

// AggregateRating sums the vote values on a link, 0 when unrated. It is
// recomputed from the ratings table on every call rather than cached.
func (s *ScoringService) AggregateRating(linkID uint) (int, error) {
	return aggregateRating(s.db, linkID)
}

// Leaderboard returns all users ordered by points. Equal points keep
// account creation order.
func (s *ScoringService) Leaderboard() ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	err := s.db.Model(&models.User{}).
		Select("username, boardgame_points").
		Order("boardgame_points desc, id asc").
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	return entries, nil
}

// forUpdate locks the rows a vote transaction reads, so two concurrent
// votes on the same (rater, link) pair serialize: the second reads the
// committed value and resolves to the no-op branch instead of
// re-applying a point delta. sqlite serializes writers on its own and
// rejects FOR UPDATE syntax, so the clause is postgres-only.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// adjustPoints applies a delta as a SQL increment so concurrent
// transactions cannot lose an update to the counter.
func adjustPoints(tx *gorm.DB, userID uint, delta int) error {
	return tx.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("boardgame_points", gorm.Expr("boardgame_points + ?", delta)).Error
}

func aggregateRating(tx *gorm.DB, linkID uint) (int, error) {
	var total int
	err := tx.Model(&models.Rating{}).Where("link_id = ?", linkID).
		Select("COALESCE(SUM(value), 0)").Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
