package location

import (
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

// Registry owns every site state, in catalog order, plus the current-site pointer
type Registry struct {
	definitions []SiteDefinition
	sites       []*Site
	byID        map[string]*Site
	currentID   string
}

// NewRegistry builds the starting world from the site catalog
func NewRegistry(definitions []SiteDefinition) *Registry {
	r := &Registry{definitions: append([]SiteDefinition(nil), definitions...)}
	r.Reset()
	return r
}

// Reset rebuilds every site in its starting state
func (r *Registry) Reset() {
	r.sites = make([]*Site, 0, len(r.definitions))
	r.byID = make(map[string]*Site, len(r.definitions))
	r.currentID = ""
	for _, def := range r.definitions {
		site := NewSite(def)
		r.sites = append(r.sites, site)
		r.byID[def.ID] = site
		if r.currentID == "" && site.IsUnlocked() {
			r.currentID = def.ID
		}
	}
	if r.currentID == "" && len(r.sites) > 0 {
		r.currentID = r.sites[0].ID()
	}
}

// Sites returns every site in catalog order
func (r *Registry) Sites() []*Site {
	return append([]*Site(nil), r.sites...)
}

// Get looks up a site by id
func (r *Registry) Get(id string) (*Site, error) {
	site, ok := r.byID[id]
	if !ok {
		return nil, shared.NewUnknownIDError("site", id)
	}
	return site, nil
}

// Current returns the site the fleet is at (nil for an empty catalog)
func (r *Registry) Current() *Site {
	return r.byID[r.currentID]
}

// CurrentID returns the id of the current site
func (r *Registry) CurrentID() string {
	return r.currentID
}

// SetCurrent moves the current-site pointer
func (r *Registry) SetCurrent(id string) error {
	if _, err := r.Get(id); err != nil {
		return err
	}
	r.currentID = id
	return nil
}

// ReadyToMine returns the sites whose discovery is complete
func (r *Registry) ReadyToMine() []*Site {
	var ready []*Site
	for _, site := range r.sites {
		if site.IsReadyToMine() {
			ready = append(ready, site)
		}
	}
	return ready
}
