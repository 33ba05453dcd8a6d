package fsinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Cloud-Foundations/Dominator/lib/format"
	"github.com/shirou/gopsutil/v4/disk"
)

func lookup(filename string) (*Info, error) {
	dirname, err := filepath.Abs(filepath.Dir(filename))
	if err != nil {
		return nil, err
	}
	if resolved, err := filepath.EvalSymlinks(dirname); err == nil {
		dirname = resolved
	}
	usage, err := disk.Usage(dirname)
	if err != nil {
		return nil, err
	}
	info := &Info{
		FsType: usage.Fstype,
		Total:  usage.Total,
		Free:   usage.Free,
	}
	partitions, err := disk.Partitions(true)
	if err != nil {
		return nil, err
	}
	if partition := findPartition(dirname, partitions); partition != nil {
		info.Device = partition.Device
		info.MountPoint = partition.Mountpoint
		if partition.Fstype != "" {
			info.FsType = partition.Fstype
		}
	}
	return info, nil
}

// findPartition prefers the partition on the same device as dirname and
// falls back to the longest mount point containing dirname.
func findPartition(dirname string,
	partitions []disk.PartitionStat) *disk.PartitionStat {
	if devnum, err := getDevnum(dirname); err == nil {
		best := longestMountPoint(dirname, partitions,
			func(partition *disk.PartitionStat) bool {
				dnum, err := getDevnum(partition.Mountpoint)
				return err == nil && dnum == devnum
			})
		if best != nil {
			return best
		}
	}
	return longestMountPoint(dirname, partitions,
		func(*disk.PartitionStat) bool { return true })
}

func longestMountPoint(dirname string, partitions []disk.PartitionStat,
	match func(*disk.PartitionStat) bool) *disk.PartitionStat {
	var best *disk.PartitionStat
	for index := range partitions {
		partition := &partitions[index]
		if !containsPath(partition.Mountpoint, dirname) || !match(partition) {
			continue
		}
		if best == nil || len(partition.Mountpoint) > len(best.Mountpoint) {
			best = partition
		}
	}
	return best
}

func containsPath(mountPoint, pathname string) bool {
	if mountPoint == "" {
		return false
	}
	if mountPoint == pathname || mountPoint == string(filepath.Separator) {
		return true
	}
	return strings.HasPrefix(pathname,
		strings.TrimSuffix(mountPoint, string(filepath.Separator))+
			string(filepath.Separator))
}

func requiredSpace(filename string, totalSize uint64) uint64 {
	fi, err := os.Stat(filename)
	if err != nil || !fi.Mode().IsRegular() {
		return totalSize
	}
	if existing := uint64(fi.Size()); existing < totalSize {
		return totalSize - existing
	}
	return 0
}

func (info *Info) format() string {
	device := info.Device
	if device == "" {
		device = "unknown device"
	}
	mountPoint := info.MountPoint
	if mountPoint == "" {
		mountPoint = "unknown mount point"
	}
	return fmt.Sprintf("%s on %s (%s), %s free of %s", device, mountPoint,
		info.FsType, format.FormatBytes(info.Free),
		format.FormatBytes(info.Total))
}
