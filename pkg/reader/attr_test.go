package reader

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

const attrFixture = `
Report Date: 2025/1/2 PM 12:23:23
Report User Name: USER


Log File Properties:
                          File Name: sample.wsl
                        Create Date: 2025/1/1 PM 12:10:51

Device Properties:
                               Site: Sample Site
                        Device Name:
                      Serial Number: 999996
                   Firmware Version: 2.37

Log Configuration
                      Computer Name: PC
                        Sample Rate: Days: 0 hrs: 00 mins: 00 secs: 15
                       High Trigger: 0 (pH)

Other Log Settings
                        Temperature: 21.4429 (C)

        Specific Conductivity Model: Standard Methods

                         TDS Factor: 0.65


______________________________________________________________________________________________________________
`

func TestReadAttr(t *testing.T) {
	src := newLineSource([]byte(attrFixture))
	attr := NewAttrMap()

	if err := readAttr(src, attr, true); err != nil {
		t.Fatalf("readAttr() error = %v", err)
	}

	got, err := json.Marshal(attr)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{` +
		`"Report Date":"2025/1/2 PM 12:23:23",` +
		`"Report User Name":"USER",` +
		`"Log File Properties":{"File Name":"sample.wsl","Create Date":"2025/1/1 PM 12:10:51"},` +
		`"Device Properties":{"Site":"Sample Site","Device Name":"","Serial Number":"999996","Firmware Version":"2.37"},` +
		`"Log Configuration":{"Computer Name":"PC","Sample Rate":"Days: 0 hrs: 00 mins: 00 secs: 15","High Trigger":"0 (pH)"},` +
		`"Other Log Settings":{"Temperature":"21.4429 (C)","Specific Conductivity Model":"Standard Methods","TDS Factor":"0.65"}` +
		`}`
	if string(got) != want {
		t.Errorf("attr JSON mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestReadAttr_NestedScenario(t *testing.T) {
	src := newLineSource([]byte("Site:\n  Name: Foo\n"))
	attr := NewAttrMap()

	if err := readAttr(src, attr, true); err != nil {
		t.Fatalf("readAttr() error = %v", err)
	}

	site, ok := attr.Get("Site")
	if !ok {
		t.Fatal(`attr["Site"] missing`)
	}
	nested, ok := site.(*AttrMap)
	if !ok {
		t.Fatalf(`attr["Site"] type = %T, want *AttrMap`, site)
	}
	if name, _ := nested.Get("Name"); name != "Foo" {
		t.Errorf(`Site.Name = %v, want "Foo"`, name)
	}
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		kind lineKind
		key  string
		val  string
	}{
		{"Device Properties:", lineHeader, "Device Properties", ""},
		{"Log Configuration", lineHeader, "Log Configuration", ""},
		{"  Site: Sample Site", lineEntry, "Site", "Sample Site"},
		{"  Device Name:  ", lineEntry, "Device Name", ""},
		{"Report Date: 2025/1/2", lineEntry, "Report Date", "2025/1/2"},
	}

	for _, tt := range tests {
		kind, key, val := classifyLine(tt.line)
		if kind != tt.kind || key != tt.key || val != tt.val {
			t.Errorf("classifyLine(%q) = (%v, %q, %q), want (%v, %q, %q)",
				tt.line, kind, key, val, tt.kind, tt.key, tt.val)
		}
	}
}

const logDataAttrFixture = `
Log Data:
Record Count: 2
Sensors: 6
	1 - 999991: pH/ORP
	2 - 999995: Rugged Dissolved Oxygen (RDO)
	3 - 999997: Conductivity
	4 - 999999: Turbidity
	5 - 999996: Internal
	6 - 999998: Pressure (200m/650ft)
Time Zone: 台北標準時間
`

func TestReadLogDataAttr(t *testing.T) {
	src := newLineSource([]byte(logDataAttrFixture))

	logData, err := readLogDataAttr(src)
	if err != nil {
		t.Fatalf("readLogDataAttr() error = %v", err)
	}

	if count, _ := logData.Get("Record Count"); count != 2 {
		t.Errorf("Record Count = %v, want 2", count)
	}

	raw, ok := logData.Get("Sensors")
	if !ok {
		t.Fatal("Sensors missing")
	}
	sensors := raw.([]TxtSensor)
	if len(sensors) != 6 {
		t.Fatalf("got %d sensors, want 6", len(sensors))
	}
	if sensors[0] != (TxtSensor{Sensor: "pH/ORP", Serial: "999991"}) {
		t.Errorf("sensor 0 = %+v", sensors[0])
	}
	if sensors[5] != (TxtSensor{Sensor: "Pressure (200m/650ft)", Serial: "999998"}) {
		t.Errorf("sensor 5 = %+v", sensors[5])
	}

	if tz, _ := logData.Get("Time Zone"); tz != "台北標準時間" {
		t.Errorf("Time Zone = %v", tz)
	}
}

func TestReadLogDataAttr_SensorIndexOutOfOrder(t *testing.T) {
	fixture := strings.Join([]string{
		"Log Data:",
		"Record Count: 1",
		"Sensors: 2",
		"\t1 - 999991: pH/ORP",
		"\t3 - 999997: Conductivity",
		"Time Zone: UTC",
	}, "\n")

	_, err := readLogDataAttr(newLineSource([]byte(fixture)))
	if !errors.Is(err, ErrInvalidData) {
		t.Errorf("error = %v, want ErrInvalidData", err)
	}
}

func TestReadLogDataAttr_MissingExpectedKey(t *testing.T) {
	fixture := "Log Data:\nSensors: 1\n"

	_, err := readLogDataAttr(newLineSource([]byte(fixture)))
	if err == nil {
		t.Fatal("expected error for missing Record Count")
	}
	if !strings.Contains(err.Error(), "Record Count") {
		t.Errorf("error %q does not name the expected key", err)
	}
}

func TestAttrMap_OrderAndOverwrite(t *testing.T) {
	m := NewAttrMap()
	m.Set("b", "1")
	m.Set("a", "2")
	m.Set("b", "3")

	if got := m.Keys(); len(got) != 2 || got[0] != "b" || got[1] != "a" {
		t.Errorf("Keys() = %v, want [b a]", got)
	}
	if v, _ := m.Get("b"); v != "3" {
		t.Errorf(`Get("b") = %v, want "3"`, v)
	}
}
