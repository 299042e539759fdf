// Package stage holds the single source of truth for the mapping between
// a content item's lifecycle status, the board column representing it and
// the column's URL slug. Every translation in the system goes through the
// table below; no other component may embed its own copy.
package stage

// Status is the lifecycle stage of a content item.
type Status string

const (
	StatusNew         Status = "NEW"
	StatusInProgress  Status = "IN_PROGRESS"
	StatusNeedsReview Status = "NEEDS_REVIEW"
	StatusApproved    Status = "APPROVED"
)

type entry struct {
	slug   string
	column string
	status Status
	color  string
}

// Ordered left to right as the board displays them. The first entry is
// the default stage for newly created items.
var table = []entry{
	{slug: "neues-video-aida", column: "Neues Video Aida", status: StatusNew, color: "from-purple-400 to-purple-600"},
	{slug: "in-arbeit", column: "In Arbeit", status: StatusInProgress, color: "from-blue-400 to-blue-600"},
	{slug: "review", column: "Review", status: StatusNeedsReview, color: "from-orange-400 to-orange-600"},
	{slug: "fertig", column: "Fertig", status: StatusApproved, color: "from-green-400 to-green-600"},
}

// Count is the fixed number of stages; a project board always carries
// exactly this many columns.
const Count = 4

func StatusForSlug(slug string) (Status, bool) {
	for _, e := range table {
		if e.slug == slug {
			return e.status, true
		}
	}
	return "", false
}

func SlugForStatus(status Status) (string, bool) {
	for _, e := range table {
		if e.status == status {
			return e.slug, true
		}
	}
	return "", false
}

func StatusForColumnName(name string) (Status, bool) {
	for _, e := range table {
		if e.column == name {
			return e.status, true
		}
	}
	return "", false
}

func ColumnNameForStatus(status Status) (string, bool) {
	for _, e := range table {
		if e.status == status {
			return e.column, true
		}
	}
	return "", false
}

func ColumnNameForSlug(slug string) (string, bool) {
	for _, e := range table {
		if e.slug == slug {
			return e.column, true
		}
	}
	return "", false
}

func SlugForColumnName(name string) (string, bool) {
	for _, e := range table {
		if e.column == name {
			return e.slug, true
		}
	}
	return "", false
}

// ColumnColor returns the display gradient for a column name. Unknown
// columns get a neutral gray.
func ColumnColor(name string) string {
	for _, e := range table {
		if e.column == name {
			return e.color
		}
	}
	return "from-gray-400 to-gray-600"
}

func IsValid(status Status) bool {
	_, ok := SlugForStatus(status)
	return ok
}

// ColumnNames returns the four column names in board order.
func ColumnNames() []string {
	names := make([]string, 0, len(table))
	for _, e := range table {
		names = append(names, e.column)
	}
	return names
}

// Statuses returns all statuses in stage order.
func Statuses() []Status {
	statuses := make([]Status, 0, len(table))
	for _, e := range table {
		statuses = append(statuses, e.status)
	}
	return statuses
}

// Slugs returns all column slugs in board order.
func Slugs() []string {
	slugs := make([]string, 0, len(table))
	for _, e := range table {
		slugs = append(slugs, e.slug)
	}
	return slugs
}
