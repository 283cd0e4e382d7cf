/*
Package domain contains the core models shared by the audit tasks, the host task
table and the process adapter.

It is kept free of I/O: running processes and exiting belong to the adapters and
to the command line boundary.

# Key Entities

  - TaskDef: A named task with a description, prerequisites and an action.
  - Invocation: The immutable argument vector handed to the external tool.
  - Outcome: The tri-state result of launching the external tool.
  - HaltError / CommandNotFoundError: The two failure conditions a task can report.
*/
package domain
