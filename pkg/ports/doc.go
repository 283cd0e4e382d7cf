/*
Package ports defines the interfaces between the audit tasks and their collaborators.

# Key Interfaces

  - Registrar: The host task table the audit tasks are defined into.
  - ProcessRunner: Runs the external audit tool and reports its outcome.
*/
package ports
