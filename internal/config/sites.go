package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Site is one named laundry location
type Site struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// SiteRegistry resolves site codes to display names. Unknown codes are
// tolerated and displayed verbatim rather than rejected.
type SiteRegistry struct {
	sites []Site
	names map[string]string
}

// DefaultSites returns the built-in set of laundry locations
func DefaultSites() []Site {
	return []Site{
		{Code: "home", Name: "Home"},
		{Code: "main-st", Name: "Main Street Laundromat"},
		{Code: "campus-north", Name: "Campus North"},
		{Code: "campus-south", Name: "Campus South"},
		{Code: "dorm-b", Name: "Dorm B Basement"},
	}
}

// NewSiteRegistry builds a registry from the given sites
func NewSiteRegistry(sites []Site) *SiteRegistry {
	names := make(map[string]string, len(sites))
	for _, site := range sites {
		names[site.Code] = site.Name
	}
	return &SiteRegistry{sites: sites, names: names}
}

// LoadSites reads a YAML site file and merges it over the built-in set.
// A missing or empty file yields the defaults with no error.
func LoadSites(path string) (*SiteRegistry, error) {
	sites := DefaultSites()
	if path == "" {
		return NewSiteRegistry(sites), nil
	}

	fileData, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewSiteRegistry(sites), nil
		}
		return NewSiteRegistry(sites), fmt.Errorf("read sites file: %w", err)
	}
	if len(fileData) == 0 {
		return NewSiteRegistry(sites), nil
	}

	var fromFile struct {
		Sites []Site `yaml:"sites"`
	}
	if err := yaml.Unmarshal(fileData, &fromFile); err != nil {
		return NewSiteRegistry(sites), fmt.Errorf("parse sites yaml: %w", err)
	}

	sites = mergeSites(sites, fromFile.Sites)
	return NewSiteRegistry(sites), nil
}

// mergeSites overrides built-in names by code and appends new sites in
// file order
func mergeSites(base, extra []Site) []Site {
	index := make(map[string]int, len(base))
	merged := make([]Site, len(base))
	copy(merged, base)
	for i, site := range merged {
		index[site.Code] = i
	}
	for _, site := range extra {
		if site.Code == "" {
			continue
		}
		if i, exists := index[site.Code]; exists {
			merged[i].Name = site.Name
			continue
		}
		index[site.Code] = len(merged)
		merged = append(merged, site)
	}
	return merged
}

// Sites returns all registered sites in order
func (r *SiteRegistry) Sites() []Site {
	return r.sites
}

// Codes returns all site codes in order, for select widgets
func (r *SiteRegistry) Codes() []string {
	codes := make([]string, 0, len(r.sites))
	for _, site := range r.sites {
		codes = append(codes, site.Code)
	}
	return codes
}

// DisplayName resolves a site code to its display name. Unknown codes
// come back as-is.
func (r *SiteRegistry) DisplayName(code string) string {
	if name, exists := r.names[code]; exists {
		return name
	}
	return code
}

// Known reports whether the code is a registered site
func (r *SiteRegistry) Known(code string) bool {
	_, exists := r.names[code]
	return exists
}
