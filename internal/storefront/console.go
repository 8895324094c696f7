package storefront

import (
	"context"
	"sync"

	"github.com/puzpuzpuz/xsync"

	"github.com/cofund-lab/backend/internal/client"
	"github.com/cofund-lab/backend/internal/model"
)

// projectRow is one line of the moderation table plus the lock that keeps an
// optimistic update and its rollback from interleaving with another change to
// the same project.
type projectRow struct {
	mutex   sync.Mutex
	project model.Project
}

// AdminConsole is the back-office project moderation screen. Status changes
// apply optimistically: the row flips first and is restored if the service
// refuses. Rows are independent, a failure on one never reverts another.
type AdminConsole struct {
	caller client.StoreCaller

	rows *xsync.MapOf[string, *projectRow]

	mutex sync.Mutex
	// statusFilter narrows the table to one status; empty shows everything.
	statusFilter string
	// detailID is the project open in the side panel, if any.
	detailID string
}

func NewAdminConsole(caller client.StoreCaller) *AdminConsole {
	return &AdminConsole{
		caller: caller,
		rows:   xsync.NewMapOf[*projectRow](),
	}
}

// Load replaces the table with the service's current project list.
func (c *AdminConsole) Load(ctx context.Context) error {
	projects, err := c.caller.GetProjects(ctx)
	if err != nil {
		return err
	}

	fresh := xsync.NewMapOf[*projectRow]()
	for _, project := range projects {
		fresh.Store(project.ID, &projectRow{project: project})
	}

	c.mutex.Lock()
	c.rows = fresh
	c.mutex.Unlock()
	return nil
}

// table reads the rows pointer under the console lock, so a concurrent Load
// swapping the map never races a per-row mutation.
func (c *AdminConsole) table() *xsync.MapOf[string, *projectRow] {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.rows
}

func (c *AdminConsole) SetFilter(status string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.statusFilter = status
}

func (c *AdminConsole) Filter() string {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.statusFilter
}

func (c *AdminConsole) OpenDetail(projectID string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.detailID = projectID
}

// Detail returns the project shown in the side panel.
func (c *AdminConsole) Detail() (model.Project, bool) {
	c.mutex.Lock()
	id := c.detailID
	rows := c.rows
	c.mutex.Unlock()

	if id == "" {
		return model.Project{}, false
	}

	row, ok := rows.Load(id)
	if !ok {
		return model.Project{}, false
	}

	row.mutex.Lock()
	defer row.mutex.Unlock()
	return row.project, true
}

// Project returns one row by id.
func (c *AdminConsole) Project(projectID string) (model.Project, bool) {
	row, ok := c.table().Load(projectID)
	if !ok {
		return model.Project{}, false
	}

	row.mutex.Lock()
	defer row.mutex.Unlock()
	return row.project, true
}

// Visible lists the rows the current filter admits.
func (c *AdminConsole) Visible() []model.Project {
	c.mutex.Lock()
	filter := c.statusFilter
	rows := c.rows
	c.mutex.Unlock()

	var projects []model.Project
	rows.Range(func(_ string, row *projectRow) bool {
		row.mutex.Lock()
		project := row.project
		row.mutex.Unlock()

		if filter == "" || project.Status == filter {
			projects = append(projects, project)
		}
		return true
	})

	return projects
}

// SetStatus flips one project's status optimistically. On refusal the row is
// restored to exactly what it showed before and the service's error is
// returned. On success a filter that would hide the freshly changed row is
// cleared, so the admin keeps seeing what they just touched.
func (c *AdminConsole) SetStatus(ctx context.Context, projectID, status string) error {
	row, ok := c.table().Load(projectID)
	if !ok {
		return ErrNotAllowed
	}

	row.mutex.Lock()
	previous := row.project.Status
	row.project.Status = status
	row.mutex.Unlock()

	if err := c.caller.SetProjectStatus(ctx, projectID, status); err != nil {
		row.mutex.Lock()
		row.project.Status = previous
		row.mutex.Unlock()
		return err
	}

	c.mutex.Lock()
	if c.statusFilter != "" && c.statusFilter != status {
		c.statusFilter = ""
	}
	c.mutex.Unlock()

	return nil
}
