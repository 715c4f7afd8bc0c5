package model

// TaskStatus is the Kanban column a task sits in. Transitions are free:
// any status may move to any other, including out of done and cancelled.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
	TaskCancelled  TaskStatus = "cancelled"
)

// DeliveryStatus is the textual status label shown next to a client project.
type DeliveryStatus string

const (
	StatusOnTrack DeliveryStatus = "On Track"
	StatusAtRisk  DeliveryStatus = "At Risk"
	StatusBehind  DeliveryStatus = "Behind"
)

// Health is the traffic-light risk indicator, tracked separately from the
// textual status label.
type Health string

const (
	HealthGreen Health = "green"
	HealthAmber Health = "amber"
	HealthRed   Health = "red"
)

// ClientProjectTask is a unit of work owned by exactly one ClientProject.
// Owner is free text, not a team-member foreign key.
type ClientProjectTask struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Status    TaskStatus `json:"status"`
	Owner     string     `json:"owner,omitempty"`
	DueDate   string     `json:"dueDate,omitempty"`
	Highlight string     `json:"highlight,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// TimelineItem is one milestone on a client project timeline, ordered for
// display.
type TimelineItem struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Date        string `json:"date"`
	Status      string `json:"status"` // complete | active | upcoming
	Description string `json:"description,omitempty"`
}

// ClientUpdate is a free-form log entry on a client project.
type ClientUpdate struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Author  string `json:"author"`
	Summary string `json:"summary"`
	Type    string `json:"type,omitempty"` // win | risk | note | decision
	Impact  string `json:"impact,omitempty"`
}

// ResourceLink is a labeled URL attached to a client project. Pure reference
// data, no behavior.
type ResourceLink struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	URL         string `json:"url"`
	Type        string `json:"type"` // doc | design | repo | prototype | analytics | ticket | storage
	Description string `json:"description,omitempty"`
}

// ClientProject is a delivery engagement for one paying client, distinct
// from the public Project case study it may link to via ProjectID (a weak
// reference that is allowed to dangle).
//
// Progress is derived from Tasks whenever any task mutation path runs; it is
// only hand-editable while the task list is empty. Status and Health are the
// manually set override fields; see DeriveDelivery for the computed pair.
type ClientProject struct {
	ID            string              `json:"id"`
	ProjectID     string              `json:"projectId"`
	ClientName    string              `json:"clientName"`
	Name          string              `json:"name"`
	Summary       string              `json:"summary"`
	Status        DeliveryStatus      `json:"status"`
	Health        Health              `json:"health"`
	Progress      int                 `json:"progress"`
	BudgetUsed    int                 `json:"budgetUsed"`
	StartDate     string              `json:"startDate"`
	EndDate       string              `json:"endDate,omitempty"`
	NextMilestone string              `json:"nextMilestone"`
	Team          []string            `json:"team"`
	Resources     []ResourceLink      `json:"resources"`
	Tasks         []ClientProjectTask `json:"tasks"`
	Timeline      []TimelineItem      `json:"timeline"`
	Updates       []ClientUpdate      `json:"updates"`
	Links         []ResourceLink      `json:"links"`
}

func (p ClientProject) EntityID() string { return p.ID }

// Task returns the task with the given id, or false when absent.
func (p ClientProject) Task(taskID string) (ClientProjectTask, bool) {
	for _, t := range p.Tasks {
		if t.ID == taskID {
			return t, true
		}
	}
	return ClientProjectTask{}, false
}
