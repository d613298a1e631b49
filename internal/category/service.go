package category

// Service provides business logic for categories.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// List returns up to `limit` category items.
func (s *Service) List(limit int) []CategoryItem {
	return s.repo.List(limit)
}

func (s *Service) Resolve(label string) (Resolution, bool) {
	return s.repo.Resolve(label)
}
