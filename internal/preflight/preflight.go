// Package preflight validates the environment before a run starts.
package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"matchreel/internal/config"
	"matchreel/internal/deps"
	"matchreel/internal/record"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the preflight checks for a run rooted at the record's
// directory. yt-dlp is only checked for remote records since local runs
// never invoke it.
func RunAll(cfg *config.Config, rec *record.GameRecord) []Result {
	if cfg == nil || rec == nil {
		return nil
	}

	dir := rec.Dir()
	results := []Result{
		CheckDirectoryAccess("Record directory", dir),
		CheckFreeSpace(dir, float64(cfg.MinFreeSpaceGiB)),
	}
	for _, status := range CheckSystemDeps(cfg, rec.Mode) {
		detail := status.Detail
		if status.Available {
			detail = status.Command
		}
		results = append(results, Result{
			Name:   status.Name,
			Passed: status.Available,
			Detail: detail,
		})
	}
	return results
}

// AllPassed reports whether every check in results passed.
func AllPassed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckFreeSpace verifies the filesystem holding path has at least minGiB
// free. Raw and rendered clips coexist on disk until cleanup, so runs on
// long records can need several gigabytes of scratch space.
func CheckFreeSpace(path string, minGiB float64) Result {
	const name = "Free space"
	if minGiB <= 0 {
		return Result{Name: name, Passed: true, Detail: "check disabled"}
	}
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: statfs: %v)", path, err)}
	}
	freeGiB := float64(stat.Bavail) * float64(stat.Bsize) / (1 << 30)
	if freeGiB < minGiB {
		return Result{Name: name, Detail: fmt.Sprintf("%.1f GiB free, need %.1f GiB", freeGiB, minGiB)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%.1f GiB free", freeGiB)}
}

// CheckSystemDeps evaluates the external binaries required for the given
// record mode. Both the run path and the deps command use this to avoid
// duplicating the requirements list.
func CheckSystemDeps(cfg *config.Config, mode record.Mode) []deps.Status {
	requirements := deps.Requirements(cfg)
	if mode != record.ModeRemote {
		filtered := requirements[:0]
		for _, req := range requirements {
			if req.Name == "yt-dlp" {
				continue
			}
			filtered = append(filtered, req)
		}
		requirements = filtered
	}
	return deps.CheckBinaries(requirements)
}
