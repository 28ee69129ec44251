// Package pkgmanager decides which Node.js package manager a scaffolded
// project should use. The invoking manager's user-agent hint wins over
// lockfiles found in the working directory; npm is the fallback.
package pkgmanager
