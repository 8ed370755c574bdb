// internal/linode/catalog.go
package linode

import (
	"context"
	"sort"
	"strings"

	"github.com/xmdragon/linode-manager/internal/models"
)

// regionPriority orders regions by country so closer/larger markets surface
// first in the creation form. Unmapped countries fall to the end but keep
// their relative label order.
var regionPriority = map[string]int{
	"us": 1,  // North America
	"ca": 2,  // Canada
	"gb": 3,  // UK
	"de": 4,  // Germany
	"nl": 5,  // Netherlands
	"se": 6,  // Sweden
	"es": 7,  // Spain
	"it": 8,  // Italy
	"sg": 9,  // Singapore
	"jp": 10, // Japan
	"au": 11, // Australia
	"in": 12, // India
	"id": 13, // Indonesia
}

const unmappedRegionPriority = 999

// officialImagePrefix namespaces the vendor's own image catalog.
const officialImagePrefix = "linode/"

// ListRegions returns all regions sorted by country priority, ties broken by
// label (case-sensitive).
func (c *Client) ListRegions(ctx context.Context) ([]models.Region, error) {
	regions, err := fetchList[models.Region](ctx, c, "/regions")
	if err != nil {
		return nil, err
	}

	sort.SliceStable(regions, func(i, j int) bool {
		pi, pj := countryPriority(regions[i].Country), countryPriority(regions[j].Country)
		if pi != pj {
			return pi < pj
		}
		return strings.Compare(regions[i].Label, regions[j].Label) < 0
	})

	return regions, nil
}

func countryPriority(country string) int {
	if p, ok := regionPriority[country]; ok {
		return p
	}
	return unmappedRegionPriority
}

// ListImages returns the public official image catalog sorted by label.
// Private, deprecated, non-public, unavailable and off-namespace entries are
// dropped.
func (c *Client) ListImages(ctx context.Context) ([]models.Image, error) {
	images, err := fetchList[models.Image](ctx, c, "/images")
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Image, 0, len(images))
	for _, image := range images {
		if isOfficialPublicImage(image) {
			filtered = append(filtered, image)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return strings.Compare(filtered[i].Label, filtered[j].Label) < 0
	})

	return filtered, nil
}

// isOfficialPublicImage keeps only entries that are publicly flagged, in the
// vendor namespace, not deprecated, available (or status-unset for older
// catalog entries) and not identifier-tagged private.
func isOfficialPublicImage(image models.Image) bool {
	return image.IsPublic &&
		strings.HasPrefix(image.ID, officialImagePrefix) &&
		!image.Deprecated &&
		(image.Status == "available" || image.Status == "") &&
		!strings.Contains(image.ID, "private")
}

// ListStackScripts returns only publicly-flagged, non-deprecated scripts.
func (c *Client) ListStackScripts(ctx context.Context) ([]models.StackScript, error) {
	scripts, err := fetchList[models.StackScript](ctx, c, "/linode/stackscripts")
	if err != nil {
		return nil, err
	}

	filtered := make([]models.StackScript, 0, len(scripts))
	for _, script := range scripts {
		if script.IsPublic && !script.Deprecated {
			filtered = append(filtered, script)
		}
	}

	return filtered, nil
}
