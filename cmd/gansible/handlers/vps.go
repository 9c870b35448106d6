package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gandi/gansible/internal/modules"
	"github.com/gandi/gansible/internal/platform/gandi"
)

// VPSOptions carries the vps command flags.
type VPSOptions struct {
	State         string
	Names         []string
	Datacenter    string
	Image         string
	MachineType   string
	Cores         int
	Memory        int
	Disk          int
	Bandwidth     float64
	ExtraDisks    []string
	PrivateIfaces []string
	User          string
	Password      string
	SSHKeyIDs     []int
	Farm          string
}

// VPS runs one virtual machine lifecycle operation and prints its
// result.
func VPS(ctx context.Context, configPath string, opts VPSOptions) error {
	cfg, client, err := setup(configPath)
	if err != nil {
		return moduleResult(nil, err)
	}
	if opts.Datacenter == "" {
		opts.Datacenter = cfg.Datacenter
	}
	svc := modules.NewVPSService(client)

	switch opts.State {
	case "created":
		extraDisks, err := parseExtraDisks(opts.ExtraDisks)
		if err != nil {
			return err
		}
		ifaces, err := parsePrivateIfaces(opts.PrivateIfaces)
		if err != nil {
			return err
		}
		result, err := svc.Create(ctx, modules.VPSCreateOpts{
			Names:       opts.Names,
			Image:       opts.Image,
			MachineType: opts.MachineType,
			Cores:       opts.Cores,
			Memory:      opts.Memory,
			Disk:        opts.Disk,
			Bandwidth:   opts.Bandwidth,
			ExtraDisks:  extraDisks,
			Datacenter:  opts.Datacenter,
			User:        opts.User,
			Password:    opts.Password,
			SSHKeyIDs:   opts.SSHKeyIDs,
			Farm:        opts.Farm,
			Interfaces:  ifaces,
		})
		return moduleResult(result, err)
	case "deleted":
		result, err := svc.Terminate(ctx, opts.Datacenter, opts.Names)
		return moduleResult(result, err)
	case "started":
		result, err := svc.Start(ctx, opts.Datacenter, opts.Names)
		return moduleResult(result, err)
	case "stopped":
		result, err := svc.Stop(ctx, opts.Datacenter, opts.Names)
		return moduleResult(result, err)
	case "rebooted":
		result, err := svc.Reboot(ctx, opts.Datacenter, opts.Names)
		return moduleResult(result, err)
	default:
		return fmt.Errorf("unknown state %q: expected created, deleted, started, stopped or rebooted", opts.State)
	}
}

// parseExtraDisks turns name:size flag values into disk specs.
func parseExtraDisks(specs []string) ([]modules.ExtraDisk, error) {
	var disks []modules.ExtraDisk
	for _, spec := range specs {
		name, sizeStr, ok := strings.Cut(spec, ":")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid extra disk %q: expected name:size", spec)
		}
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size <= 0 {
			return nil, fmt.Errorf("invalid extra disk size in %q: expected a positive GiB count", spec)
		}
		disks = append(disks, modules.ExtraDisk{Name: name, Size: size})
	}
	return disks, nil
}

// parsePrivateIfaces turns vlan[:ip] flag values into the interface
// request attached to the VM creation call.
func parsePrivateIfaces(specs []string) (map[string][]gandi.IfaceCreateOpts, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	privates := make([]gandi.IfaceCreateOpts, 0, len(specs))
	for _, spec := range specs {
		vlan, ip, _ := strings.Cut(spec, ":")
		if vlan == "" {
			return nil, fmt.Errorf("invalid private interface %q: expected vlan[:ip]", spec)
		}
		privates = append(privates, gandi.IfaceCreateOpts{VlanName: vlan, IPAddress: ip})
	}
	return map[string][]gandi.IfaceCreateOpts{"privates": privates}, nil
}
