package status

// Code projects a (Status, Error) status-query result onto a small signed
// integer, per spec §4.3. This mapping is normative and must be preserved
// bit-exactly at FFI boundaries:
//
//	 0  NotInstalled
//	 1  UpToDate
//	 2  RequiresUpdate
//	-1  Payload: no such package or no concrete variant
//	-2  Payload: no payload found
//	-3  Wrong payload type
//	-4  Version parse error
//	-5  Payload criteria unmet
func Code(s Status, err error) int8 {
	if err == nil {
		switch s {
		case NotInstalled:
			return 0
		case UpToDate:
			return 1
		case RequiresUpdate:
			return 2
		}
		return 0
	}

	statusErr, ok := err.(*Error)
	if !ok {
		return -1
	}

	switch statusErr.Kind {
	case KindPayload:
		if statusErr.Payload == nil {
			return -1
		}
		switch statusErr.Payload.Kind {
		case NoPackage, NoConcretePackage:
			return -1
		case NoPayloadFound:
			return -2
		case CriteriaUnmet:
			return -5
		default:
			return -1
		}
	case KindWrongPayloadType:
		return -3
	case KindParsingVersion:
		return -4
	default:
		return -1
	}
}
