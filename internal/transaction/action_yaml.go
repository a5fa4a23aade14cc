package transaction

import "fmt"

// MarshalYAML renders the action type as the lowercase "install"/"uninstall"
// spelling used by planformat's serialized plans.
func (t PackageActionType) MarshalYAML() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalYAML parses the lowercase "install"/"uninstall" spelling back
// into a PackageActionType.
func (t *PackageActionType) UnmarshalYAML(data []byte) error {
	s := string(data)
	switch s {
	case "install":
		*t = ActionInstall
	case "uninstall":
		*t = ActionUninstall
	default:
		return fmt.Errorf("transaction: invalid action type %q", s)
	}
	return nil
}
