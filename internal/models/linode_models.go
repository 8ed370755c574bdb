// internal/models/linode_models.go
package models

// Shapes relayed from the Linode v4 API. Field names follow the provider's
// JSON exactly so payloads round-trip without translation.

// InstanceSpecs describes the resources allocated to an instance.
type InstanceSpecs struct {
	Disk     int `json:"disk"`
	Memory   int `json:"memory"`
	VCPUs    int `json:"vcpus"`
	Transfer int `json:"transfer"`
}

// Instance is a Linode compute instance. Status is one of running, offline,
// booting, rebooting, shutting_down, provisioning.
type Instance struct {
	ID              int           `json:"id"`
	Label           string        `json:"label"`
	Status          string        `json:"status"`
	Region          string        `json:"region"`
	Type            string        `json:"type"`
	IPv4            []string      `json:"ipv4"`
	IPv6            string        `json:"ipv6"`
	Created         string        `json:"created"`
	Updated         string        `json:"updated"`
	Hypervisor      string        `json:"hypervisor"`
	WatchdogEnabled bool          `json:"watchdog_enabled"`
	Image           string        `json:"image"`
	Tags            []string      `json:"tags"`
	Group           string        `json:"group"`
	Specs           InstanceSpecs `json:"specs"`
}

// CreateInstanceRequest is the creation payload forwarded verbatim to the
// provider. Optional references (SSH keys, StackScript, backup, firewall,
// authorized users, private IP) pass through untouched.
type CreateInstanceRequest struct {
	Label           string                 `json:"label" binding:"required"`
	Region          string                 `json:"region" binding:"required"`
	Type            string                 `json:"type" binding:"required"`
	Image           string                 `json:"image,omitempty"`
	RootPass        string                 `json:"root_pass,omitempty"`
	AuthorizedKeys  []string               `json:"authorized_keys,omitempty"`
	AuthorizedUsers []string               `json:"authorized_users,omitempty"`
	Tags            []string               `json:"tags,omitempty"`
	Group           string                 `json:"group,omitempty"`
	StackScriptID   int                    `json:"stackscript_id,omitempty"`
	StackScriptData map[string]interface{} `json:"stackscript_data,omitempty"`
	BackupID        int                    `json:"backup_id,omitempty"`
	PrivateIP       bool                   `json:"private_ip,omitempty"`
	FirewallID      int                    `json:"firewall_id,omitempty"`
}

// Region is a provider datacenter location.
type Region struct {
	ID           string   `json:"id"`
	Label        string   `json:"label"`
	Country      string   `json:"country"`
	Capabilities []string `json:"capabilities"`
	Status       string   `json:"status"`
}

// Price holds hourly/monthly pricing for a plan or addon.
type Price struct {
	Hourly  float64 `json:"hourly"`
	Monthly float64 `json:"monthly"`
}

// InstanceType is a provider compute plan.
type InstanceType struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Price      Price  `json:"price"`
	Addons     Addons `json:"addons"`
	NetworkOut int    `json:"network_out"`
	Memory     int    `json:"memory"`
	Transfer   int    `json:"transfer"`
	VCPUs      int    `json:"vcpus"`
	Disk       int    `json:"disk"`
	Class      string `json:"class"`
	Successor  string `json:"successor"`
}

// Addons groups optional plan addons.
type Addons struct {
	Backups struct {
		Price Price `json:"price"`
	} `json:"backups"`
}

// Image is a deployable disk image. Status may be empty for older catalog
// entries that predate the field.
type Image struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Vendor      string `json:"vendor"`
	Deprecated  bool   `json:"deprecated"`
	Size        int    `json:"size"`
	Type        string `json:"type"`
	IsPublic    bool   `json:"is_public"`
	Created     string `json:"created"`
	CreatedBy   string `json:"created_by"`
	Expiry      string `json:"expiry"`
	Status      string `json:"status,omitempty"`
}

// SSHKey is a stored public key from the operator's provider profile.
type SSHKey struct {
	ID      int    `json:"id"`
	Label   string `json:"label"`
	SSHKey  string `json:"ssh_key"`
	Created string `json:"created"`
}

// StackScript is a provisioning script published on the provider.
type StackScript struct {
	ID                int           `json:"id"`
	Username          string        `json:"username"`
	Label             string        `json:"label"`
	Description       string        `json:"description"`
	Ordinal           int           `json:"ordinal"`
	LogoURL           string        `json:"logo_url"`
	Images            []string      `json:"images"`
	DeploymentsTotal  int           `json:"deployments_total"`
	DeploymentsActive int           `json:"deployments_active"`
	IsPublic          bool          `json:"is_public"`
	Mine              bool          `json:"mine"`
	Created           string        `json:"created"`
	Updated           string        `json:"updated"`
	RevNote           string        `json:"rev_note"`
	Script            string        `json:"script"`
	UserDefinedFields []interface{} `json:"user_defined_fields"`
	Deprecated        bool          `json:"deprecated,omitempty"`
}

// BackupDisk describes one disk captured in a backup.
type BackupDisk struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Size  int    `json:"size"`
}

// Backup is a stored instance backup.
type Backup struct {
	ID          int          `json:"id"`
	Label       string       `json:"label"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	Type        string       `json:"type"`
	Created     string       `json:"created"`
	Finished    string       `json:"finished"`
	Configs     []string     `json:"configs"`
	Disks       []BackupDisk `json:"disks"`
}

// FirewallRule is a single inbound or outbound rule.
type FirewallRule struct {
	ID       int    `json:"id"`
	Label    string `json:"label"`
	Protocol string `json:"protocol"`
	Ports    string `json:"ports"`
	Addresses struct {
		IPv4 []string `json:"ipv4"`
		IPv6 []string `json:"ipv6"`
	} `json:"addresses"`
	Action string `json:"action"`
}

// Firewall is a provider cloud firewall.
type Firewall struct {
	ID     int    `json:"id"`
	Label  string `json:"label"`
	Status string `json:"status"`
	Rules  struct {
		Inbound  []FirewallRule `json:"inbound"`
		Outbound []FirewallRule `json:"outbound"`
	} `json:"rules"`
	Created string `json:"created"`
	Updated string `json:"updated"`
}

// AccountUser is a user on the provider account (distinct from gateway
// operator accounts).
type AccountUser struct {
	ID         int      `json:"id"`
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	Restricted bool     `json:"restricted"`
	SSHKeys    []string `json:"ssh_keys"`
	Created    string   `json:"created"`
	Updated    string   `json:"updated"`
}
