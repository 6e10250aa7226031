//go:build rp2040

package config

import "machine"

var (
	Trigger = machine.GP16
	Echo    = machine.GP18

	Button1 = machine.GP28
	Button2 = machine.GP26
	Button3 = machine.GP27

	LED1 = machine.GP20
	LED2 = machine.GP21
	LED3 = machine.GP22

	DisplaySDA = machine.GP4
	DisplaySCL = machine.GP5
)
