package middleware

import "testing"

func TestAllowed(t *testing.T) {
	cases := []struct {
		op   Operation
		role string
		want bool
	}{
		{OpBookAppointment, "patient", true},
		{OpBookAppointment, "doctor", false},
		{OpBookAppointment, "admin", false},
		{OpMakePayment, "patient", true},
		{OpMakePayment, "doctor", false},
		{OpViewAllAppointments, "doctor", true},
		{OpViewAllAppointments, "admin", true},
		{OpViewAllAppointments, "patient", false},
		{OpManageAppointment, "admin", true},
		{OpManageAppointment, "patient", true},
		{OpManageAppointment, "doctor", false},
		{Operation("unknown"), "admin", false},
	}

	for _, c := range cases {
		if got := Allowed(c.op, c.role); got != c.want {
			t.Errorf("Allowed(%q, %q) = %v, want %v", c.op, c.role, got, c.want)
		}
	}
}
