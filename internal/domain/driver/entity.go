package driver

import "github.com/google/uuid"

type Status string

const (
	StatusAvailable Status = "Available"
	StatusOnTask    Status = "On Task"
	StatusStandby   Status = "Standby"
)

func (s Status) String() string {
	return string(s)
}

type Driver struct {
	id     uuid.UUID
	name   string
	status Status
}

func ReconstructDriver(id uuid.UUID, name string, status Status) *Driver {
	return &Driver{id: id, name: name, status: status}
}

func (d *Driver) ID() uuid.UUID  { return d.id }
func (d *Driver) Name() string   { return d.name }
func (d *Driver) Status() Status { return d.status }

func (d *Driver) IsAvailable() bool {
	return d.status == StatusAvailable
}

func (d *Driver) MarkOnTask() {
	d.status = StatusOnTask
}

func (d *Driver) MarkAvailable() {
	d.status = StatusAvailable
}
