package ports

import "github.com/aretw0/bundleaudit/pkg/domain"

// Registrar is the host build tool's task namespace.
type Registrar interface {
	// Define inserts the given tasks. Defining an existing name follows the
	// host's duplicate policy.
	Define(defs ...domain.TaskDef) error
}
