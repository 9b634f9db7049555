package configurator

import (
	"fmt"

	"github.com/mvieira/go-mcp2210/mcp2210"
)

// Task identifies one step of a device configuration sequence.
type Task int

const (
	// TaskWriteManufacturerDesc writes the manufacturer descriptor to NVRAM
	TaskWriteManufacturerDesc Task = iota

	// TaskWriteProductDesc writes the product descriptor to NVRAM
	TaskWriteProductDesc

	// TaskWriteUSBParameters writes the USB key parameters to NVRAM
	TaskWriteUSBParameters

	// TaskWriteChipSettings writes the power-up chip settings to NVRAM
	TaskWriteChipSettings

	// TaskVerifyConfiguration re-reads the device configuration and compares
	// it against the edited configuration
	TaskVerifyConfiguration

	// TaskApplyChipSettings writes the chip settings to the volatile
	// register bank, taking effect without a power cycle
	TaskApplyChipSettings

	// TaskApplySPISettings writes the SPI transfer settings to the volatile
	// register bank
	TaskApplySPISettings
)

// String returns the operation name used in outcome messages.
func (t Task) String() string {
	switch t {
	case TaskWriteManufacturerDesc:
		return "write manufacturer desc"
	case TaskWriteProductDesc:
		return "write product desc"
	case TaskWriteUSBParameters:
		return "write USB parameters"
	case TaskWriteChipSettings:
		return "write chip settings"
	case TaskVerifyConfiguration:
		return "verify configuration"
	case TaskApplyChipSettings:
		return "apply chip settings"
	case TaskApplySPISettings:
		return "apply SPI settings"
	default:
		return "unknown task"
	}
}

func errUnknownTask(t Task) error {
	return fmt.Errorf("task %d is not part of the task set", int(t))
}

// BuildTaskList compares the edited configuration against the
// device-resident one and returns the ordered sequence of tasks that
// applies the difference.
//
// A write task is emitted only for fields that actually differ, in a fixed
// order: manufacturer, product, USB parameters, chip settings. Verification
// always runs, even when nothing changed, to confirm no drift occurred.
// When applyImmediately is set, tasks updating the volatile register bank
// are appended after verification for the aggregates that differ; they are
// independent of the NVRAM writes and run last so that volatile state is
// checked after the persistent state.
//
// BuildTaskList is a pure function of its inputs.
func BuildTaskList(edited, device mcp2210.Configuration, applyImmediately bool) []Task {
	var tasks []Task
	if edited.Manufacturer != device.Manufacturer {
		tasks = append(tasks, TaskWriteManufacturerDesc)
	}
	if edited.Product != device.Product {
		tasks = append(tasks, TaskWriteProductDesc)
	}
	if edited.USBParameters != device.USBParameters {
		tasks = append(tasks, TaskWriteUSBParameters)
	}
	if edited.ChipSettings != device.ChipSettings {
		tasks = append(tasks, TaskWriteChipSettings)
	}
	tasks = append(tasks, TaskVerifyConfiguration)
	if applyImmediately {
		if edited.ChipSettings != device.ChipSettings {
			tasks = append(tasks, TaskApplyChipSettings)
		}
		if edited.SPISettings != device.SPISettings {
			tasks = append(tasks, TaskApplySPISettings)
		}
	}
	return tasks
}
