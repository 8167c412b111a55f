package menu

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sushinaruto/backend/internal/types/menu"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrItemNotFound     = errors.New("menu item not found")
	ErrSpecialNotFound  = errors.New("special menu item not found")
	ErrNameRequired     = errors.New("name required")
)

type Service struct {
	repo MenuRepository
}

func NewService(repo MenuRepository) *Service {
	return &Service{repo: repo}
}

// CategoryGroup is one public-menu section: a category with its items
// ordered by name.
type CategoryGroup struct {
	Category menu.Category `json:"category"`
	Items    []menu.Item   `json:"items"`
}

// Menu returns the public menu grouped by category in database order.
func (s *Service) Menu(ctx context.Context) ([]CategoryGroup, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	groups := make([]CategoryGroup, 0, len(categories))
	for _, c := range categories {
		items, err := s.repo.ListItemsByCategory(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		groups = append(groups, CategoryGroup{Category: c, Items: items})
	}
	return groups, nil
}

// Home returns the featured and special items for the landing payload.
func (s *Service) Home(ctx context.Context) ([]menu.Item, []menu.SpecialItem, error) {
	featured, err := s.repo.ListFeaturedItems(ctx, 6)
	if err != nil {
		return nil, nil, err
	}
	specials, err := s.repo.ListSpecials(ctx, 6)
	if err != nil {
		return nil, nil, err
	}
	return featured, specials, nil
}

// Search matches menu items by name or description substring.
func (s *Service) Search(ctx context.Context, query string) ([]menu.Item, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []menu.Item{}, nil
	}
	return s.repo.SearchItems(ctx, query)
}

func (s *Service) CreateCategory(ctx context.Context, name, addedBy string) (*menu.Category, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if addedBy == "" {
		addedBy = "admin"
	}
	c := &menu.Category{Name: name, AddedBy: addedBy, CreatedAt: time.Now().UTC()}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) RenameCategory(ctx context.Context, id int64, name, addedBy string) (*menu.Category, error) {
	c, err := s.repo.FindCategoryByID(ctx, id)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	if name == "" {
		return nil, ErrNameRequired
	}
	c.Name = name
	if addedBy != "" {
		c.AddedBy = addedBy
	}
	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := s.repo.FindCategoryByID(ctx, id); err != nil {
		return ErrCategoryNotFound
	}
	return s.repo.DeleteCategory(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]menu.Category, error) {
	return s.repo.ListCategories(ctx)
}

type ItemInput struct {
	CategoryID  int64           `json:"category_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Featured    bool            `json:"featured"`
}

func (s *Service) CreateItem(ctx context.Context, in ItemInput) (*menu.Item, error) {
	if in.Name == "" {
		return nil, ErrNameRequired
	}
	if _, err := s.repo.FindCategoryByID(ctx, in.CategoryID); err != nil {
		return nil, ErrCategoryNotFound
	}
	it := &menu.Item{
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Featured:    in.Featured,
	}
	if err := s.repo.CreateItem(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *Service) UpdateItem(ctx context.Context, id int64, in ItemInput) (*menu.Item, error) {
	it, err := s.repo.FindItemByID(ctx, id)
	if err != nil {
		return nil, ErrItemNotFound
	}
	if in.Name == "" {
		return nil, ErrNameRequired
	}
	if _, err := s.repo.FindCategoryByID(ctx, in.CategoryID); err != nil {
		return nil, ErrCategoryNotFound
	}
	it.CategoryID = in.CategoryID
	it.Name = in.Name
	it.Description = in.Description
	it.Price = in.Price
	if in.Image != "" {
		it.Image = in.Image
	}
	it.Featured = in.Featured
	if err := s.repo.UpdateItem(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *Service) GetItem(ctx context.Context, id int64) (*menu.Item, error) {
	it, err := s.repo.FindItemByID(ctx, id)
	if err != nil {
		return nil, ErrItemNotFound
	}
	return it, nil
}

func (s *Service) DeleteItem(ctx context.Context, id int64) error {
	if _, err := s.repo.FindItemByID(ctx, id); err != nil {
		return ErrItemNotFound
	}
	return s.repo.DeleteItem(ctx, id)
}

func (s *Service) ListItems(ctx context.Context) ([]menu.Item, error) {
	return s.repo.ListItems(ctx)
}

type SpecialInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
}

func (s *Service) CreateSpecial(ctx context.Context, in SpecialInput) (*menu.SpecialItem, error) {
	if in.Name == "" {
		return nil, ErrNameRequired
	}
	sp := &menu.SpecialItem{Name: in.Name, Description: in.Description, Price: in.Price, Image: in.Image}
	if err := s.repo.CreateSpecial(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *Service) UpdateSpecial(ctx context.Context, id int64, in SpecialInput) (*menu.SpecialItem, error) {
	sp, err := s.repo.FindSpecialByID(ctx, id)
	if err != nil {
		return nil, ErrSpecialNotFound
	}
	if in.Name == "" {
		return nil, ErrNameRequired
	}
	sp.Name = in.Name
	sp.Description = in.Description
	sp.Price = in.Price
	if in.Image != "" {
		sp.Image = in.Image
	}
	if err := s.repo.UpdateSpecial(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *Service) DeleteSpecial(ctx context.Context, id int64) error {
	if _, err := s.repo.FindSpecialByID(ctx, id); err != nil {
		return ErrSpecialNotFound
	}
	return s.repo.DeleteSpecial(ctx, id)
}

func (s *Service) ListSpecials(ctx context.Context) ([]menu.SpecialItem, error) {
	return s.repo.ListSpecials(ctx, 0)
}
