package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

// Profile is one journal declared in the profiles file. Each ini section is
// one journal; the description key is optional.
type Profile struct {
	Name        string
	Description string
}

type Registry interface {
	GetProfiles(ctx context.Context) ([]Profile, error)
	GetProfile(ctx context.Context, name string) (*Profile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]Profile, error) {
	var profiles []Profile
	for _, section := range cr.cfg.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		profiles = append(profiles, Profile{
			Name:        section.Name(),
			Description: section.Key("description").String(),
		})
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (*Profile, error) {
	if name == ini.DefaultSection {
		return nil, fmt.Errorf("profile %s not found", name)
	}
	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", name)
	}
	return &Profile{
		Name:        section.Name(),
		Description: section.Key("description").String(),
	}, nil
}
