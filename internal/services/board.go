package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"boardrank/internal/models"

	"gorm.io/gorm"
)

var (
	ErrNotLinkAuthor = errors.New("only the author can modify this link")
	ErrMissingFields = errors.New("title and description are required")
)

const (
	SortNewest = "newest"
	SortTop    = "top"
)

type LinkDTO struct {
	UserID      uint
	Title       string
	Description string
	IPAddress   string // For Audit Log
}

// LinkSummary is the feed/display shape of a link, with its aggregate
// rating computed from the ratings table at read time.
type LinkSummary struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Author          string    `json:"author"`
	AuthorID        uint      `json:"author_id"`
	CreatedAt       time.Time `json:"created_at"`
	AggregateRating int       `json:"aggregate_rating"`
}

type BoardService struct {
	db           *gorm.DB
	auditService *AuditService
	pageSize     int
}

func NewBoardService(db *gorm.DB, auditService *AuditService, pageSize int) *BoardService {
	if pageSize <= 0 {
		pageSize = 5
	}
	return &BoardService{
		db:           db,
		auditService: auditService,
		pageSize:     pageSize,
	}
}

func (s *BoardService) CreateLink(dto LinkDTO) (*models.Link, error) {
	title := strings.TrimSpace(dto.Title)
	description := strings.TrimSpace(dto.Description)
	if title == "" || description == "" {
		return nil, ErrMissingFields
	}

	link := models.Link{
		UserID:      dto.UserID,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
	}

	if err := s.db.Create(&link).Error; err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	s.auditService.LogAction(&dto.UserID, "CREATE_LINK", fmt.Sprint(link.ID), map[string]interface{}{
		"title": title,
	}, dto.IPAddress)

	return &link, nil
}

func (s *BoardService) GetLink(linkID uint) (*models.Link, error) {
	var link models.Link
	if err := s.db.Preload("User").First(&link, linkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

func (s *BoardService) UpdateLink(userID, linkID uint, dto LinkDTO) (*models.Link, error) {
	title := strings.TrimSpace(dto.Title)
	description := strings.TrimSpace(dto.Description)
	if title == "" || description == "" {
		return nil, ErrMissingFields
	}

	var link models.Link
	if err := s.db.First(&link, linkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}
	if link.UserID != userID {
		return nil, ErrNotLinkAuthor
	}

	link.Title = title
	link.Description = description
	if err := s.db.Save(&link).Error; err != nil {
		return nil, fmt.Errorf("failed to update link: %w", err)
	}

	s.auditService.LogAction(&userID, "UPDATE_LINK", fmt.Sprint(linkID), nil, dto.IPAddress)

	return &link, nil
}

// DeleteLink removes a link and everything referencing it. Ratings (and
// hidden markers) go first, inside the same transaction, so a dangling
// rating can never survive its link.
func (s *BoardService) DeleteLink(userID, linkID uint, ip string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var link models.Link
		if err := tx.First(&link, linkID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLinkNotFound
			}
			return err
		}
		if link.UserID != userID {
			return ErrNotLinkAuthor
		}

		if err := tx.Where("link_id = ?", linkID).Delete(&models.Rating{}).Error; err != nil {
			return fmt.Errorf("failed to delete ratings: %w", err)
		}
		if err := tx.Exec("DELETE FROM hidden_links WHERE link_id = ?", linkID).Error; err != nil {
			return fmt.Errorf("failed to delete hidden markers: %w", err)
		}
		if err := tx.Delete(&models.Link{}, linkID).Error; err != nil {
			return fmt.Errorf("failed to delete link: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.auditService.LogAction(&userID, "DELETE_LINK", fmt.Sprint(linkID), nil, ip)

	return nil
}

// Feed returns one page of links visible to the viewer. A nil viewerID
// means anonymous: no hiding filter is applied. sortMode is "newest"
// (default) or "top"; top order is recomputed from the ratings table
// and ties keep the underlying insertion order.
func (s *BoardService) Feed(viewerID *uint, sortMode string, page int) ([]LinkSummary, int, error) {
	query := s.db.Model(&models.Link{})
	if viewerID != nil {
		query = query.Where(
			"links.id NOT IN (SELECT link_id FROM hidden_links WHERE user_id = ?)", *viewerID)
	}

	if sortMode == SortTop {
		// Load in insertion order; the stable sort below keeps it for ties.
		query = query.Order("links.id asc")
	} else {
		query = query.Order("links.created_at desc, links.id desc")
	}

	var links []models.Link
	if err := query.Preload("User").Find(&links).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to load feed: %w", err)
	}

	summaries, err := s.summarize(links)
	if err != nil {
		return nil, 0, err
	}

	if sortMode == SortTop {
		sort.SliceStable(summaries, func(i, j int) bool {
			return summaries[i].AggregateRating > summaries[j].AggregateRating
		})
	}

	totalPages := (len(summaries) + s.pageSize - 1) / s.pageSize
	if page < 1 {
		page = 1
	}
	start := (page - 1) * s.pageSize
	if start >= len(summaries) {
		return []LinkSummary{}, totalPages, nil
	}
	end := start + s.pageSize
	if end > len(summaries) {
		end = len(summaries)
	}
	return summaries[start:end], totalPages, nil
}

// Favorites returns the links the viewer upvoted, minus anything the
// viewer has hidden since.
func (s *BoardService) Favorites(viewerID uint) ([]LinkSummary, error) {
	var links []models.Link
	err := s.db.Model(&models.Link{}).
		Joins("JOIN ratings ON ratings.link_id = links.id").
		Where("ratings.user_id = ? AND ratings.value = 1", viewerID).
		Where("links.id NOT IN (SELECT link_id FROM hidden_links WHERE user_id = ?)", viewerID).
		Order("links.id asc").
		Preload("User").
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	return s.summarize(links)
}

// Hide marks a link as hidden from the viewer's feed. Hiding an already
// hidden link is a no-op; there is no unhide.
func (s *BoardService) Hide(viewerID, linkID uint, ip string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var link models.Link
		if err := tx.First(&link, linkID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLinkNotFound
			}
			return err
		}

		// ON CONFLICT absorbs duplicate hides, including two concurrent
		// first-time hides of the same link.
		return tx.Exec("INSERT INTO hidden_links (user_id, link_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
			viewerID, linkID).Error
	})
	if err != nil {
		return err
	}

	s.auditService.LogAction(&viewerID, "HIDE_LINK", fmt.Sprint(linkID), nil, ip)

	return nil
}

// UserLinks returns all links authored by a user, newest first.
func (s *BoardService) UserLinks(userID uint) ([]LinkSummary, error) {
	var links []models.Link
	err := s.db.Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Preload("User").
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load user links: %w", err)
	}
	return s.summarize(links)
}

func (s *BoardService) summarize(links []models.Link) ([]LinkSummary, error) {
	summaries := make([]LinkSummary, 0, len(links))
	for _, link := range links {
		aggregate, err := aggregateRating(s.db, link.ID)
		if err != nil {
			return nil, err
		}
		author := ""
		if link.User != nil {
			author = link.User.Username
		}
		summaries = append(summaries, LinkSummary{
			ID:              link.ID,
			Title:           link.Title,
			Description:     link.Description,
			Author:          author,
			AuthorID:        link.UserID,
			CreatedAt:       link.CreatedAt,
			AggregateRating: aggregate,
		})
	}
	return summaries, nil
}
