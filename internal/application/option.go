package application

import (
	"strconv"

	"github.com/ehsworks/safety-go/internal/domain/option"
	"github.com/ehsworks/safety-go/internal/domain/user"
	"github.com/ehsworks/safety-go/internal/repository"
)

// OptionService exposes the reference vocabularies (zones, facilities,
// statuses) that drive form dropdowns and label resolution.
type OptionService struct {
	repos *repository.Repos
}

func NewOptionService(repos *repository.Repos) *OptionService {
	return &OptionService{repos: repos}
}

// GetOptions returns the active entries of one vocabulary, optionally
// filtered to the children of a parent key (e.g. facilities of a zone).
func (s *OptionService) GetOptions(optionType, cascadeType, cascadeKey string) ([]option.Entry, error) {
	return s.repos.Option.List(optionType, cascadeType, cascadeKey)
}

// GetAllOptions returns every active vocabulary entry grouped by type.
func (s *OptionService) GetAllOptions() (map[string][]option.Entry, error) {
	entries, err := s.repos.Option.ListAll()
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]option.Entry)
	for _, e := range entries {
		grouped[e.OptionType] = append(grouped[e.OptionType], e)
	}
	return grouped, nil
}

func (s *OptionService) GetRoles() ([]user.RoleEntry, error) {
	return s.repos.User.ListRoles()
}

func itoa(n int) string { return strconv.Itoa(n) }

func utoa(n uint) string { return strconv.FormatUint(uint64(n), 10) }
