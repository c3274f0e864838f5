package diff

import (
	"testing"

	"github.com/godbusapi/deviate/internal/testutil"
)

func TestCompareDeprecatedAnnotation(t *testing.T) {
	plain := testutil.Doc(`<interface name="I"><method name="M"/></interface>`)
	deprecated := testutil.Doc(`
  <interface name="I">
    <method name="M">
      <annotation name="org.freedesktop.DBus.Deprecated" value="true"/>
    </method>
  </interface>`)

	assertNotices(t, compareDocs(t, plain, deprecated), []Notice{
		{SeverityInfo, "Node 'I.M' has been deprecated."},
	})
	assertNotices(t, compareDocs(t, deprecated, plain), []Notice{
		{SeverityInfo, "Node 'I.M' has been un-deprecated."},
	})
}

func TestCompareDeprecatedOnInterface(t *testing.T) {
	plain := testutil.Doc(`<interface name="I"/>`)
	deprecated := testutil.Doc(`
  <interface name="I">
    <annotation name="org.freedesktop.DBus.Deprecated" value="true"/>
  </interface>`)

	assertNotices(t, compareDocs(t, plain, deprecated), []Notice{
		{SeverityInfo, "Node 'I' has been deprecated."},
	})
}

func TestCompareCSymbolAnnotation(t *testing.T) {
	withSymbol := func(symbol string) string {
		return testutil.Doc(`
  <interface name="I">
    <annotation name="org.freedesktop.DBus.GLib.CSymbol" value="` + symbol + `"/>
  </interface>`)
	}

	assertNotices(t, compareDocs(t, withSymbol("old_sym"), withSymbol("new_sym")), []Notice{
		{SeverityInfo, "Node 'I' has changed its C symbol from 'old_sym' to 'new_sym'."},
	})
	assertNotices(t, compareDocs(t, withSymbol("same"), withSymbol("same")), nil)
}

func TestCompareNoReplyAnnotation(t *testing.T) {
	plain := testutil.Doc(`<interface name="I"><method name="M"/></interface>`)
	noReply := testutil.Doc(`
  <interface name="I">
    <method name="M">
      <annotation name="org.freedesktop.DBus.Method.NoReply" value="true"/>
    </method>
  </interface>`)

	assertNotices(t, compareDocs(t, plain, noReply), []Notice{
		{SeverityBackwardsIncompatible, "Node 'I.M' has been marked as not returning a reply."},
	})
	assertNotices(t, compareDocs(t, noReply, plain), []Notice{
		{SeverityBackwardsIncompatible, "Node 'I.M' has been marked as returning a reply."},
	})
}

func propertyWithECS(value string) string {
	annotation := ""
	if value != "" {
		annotation = `<annotation name="org.freedesktop.DBus.Property.EmitsChangedSignal" value="` + value + `"/>`
	}
	return testutil.Doc(`
  <interface name="I">
    <property name="P" type="s" access="read">` + annotation + `</property>
  </interface>`)
}

func TestCompareEmitsChangedSignalTransitions(t *testing.T) {
	const (
		stoppedEmitting = "Node 'I.P' stopped emitting org.freedesktop.DBus.PropertiesChanged."
		startedEmitting = "Node 'I.P' started emitting org.freedesktop.DBus.PropertiesChanged."
		stoppedNewValue = "Node 'I.P' stopped emitting its new value in org.freedesktop.DBus.PropertiesChanged."
		startedNewValue = "Node 'I.P' started emitting its new value in org.freedesktop.DBus.PropertiesChanged."
		stoppedConstant = "Node 'I.P' stopped being a constant."
		becameConstant  = "Node 'I.P' became a constant."
	)
	tests := []struct {
		from, to     string
		wantSeverity Severity
		wantMessage  string
	}{
		// Crossing between the emitting and non-emitting classes.
		{"true", "false", SeverityForwardsIncompatible, stoppedEmitting},
		{"true", "const", SeverityForwardsIncompatible, stoppedEmitting},
		{"invalidates", "false", SeverityForwardsIncompatible, stoppedEmitting},
		{"invalidates", "const", SeverityForwardsIncompatible, stoppedEmitting},
		{"false", "true", SeverityBackwardsIncompatible, startedEmitting},
		{"false", "invalidates", SeverityBackwardsIncompatible, startedEmitting},
		{"const", "true", SeverityBackwardsIncompatible, startedEmitting},
		{"const", "invalidates", SeverityBackwardsIncompatible, startedEmitting},
		// Refinements within a class.
		{"true", "invalidates", SeverityBackwardsIncompatible, stoppedNewValue},
		{"invalidates", "true", SeverityBackwardsIncompatible, startedNewValue},
		{"const", "false", SeverityBackwardsIncompatible, stoppedConstant},
		{"false", "const", SeverityForwardsIncompatible, becameConstant},
	}
	for _, tt := range tests {
		t.Run(tt.from+" to "+tt.to, func(t *testing.T) {
			report := compareDocs(t, propertyWithECS(tt.from), propertyWithECS(tt.to))
			assertNotices(t, report, []Notice{{tt.wantSeverity, tt.wantMessage}})
		})
	}

	for _, value := range []string{"true", "false", "const", "invalidates"} {
		t.Run(value+" unchanged", func(t *testing.T) {
			report := compareDocs(t, propertyWithECS(value), propertyWithECS(value))
			testutil.Len(t, report.All(), 0, "identity transition is silent")
		})
	}
}

func TestEmitsChangedSignalDefaultsToTrue(t *testing.T) {
	// An unannotated property behaves as "true".
	report := compareDocs(t, propertyWithECS(""), propertyWithECS("invalidates"))
	assertNotices(t, report, []Notice{
		{SeverityBackwardsIncompatible, "Node 'I.P' stopped emitting its new value in org.freedesktop.DBus.PropertiesChanged."},
	})
}

func TestEmitsChangedSignalInheritsFromInterface(t *testing.T) {
	// A property without its own annotation takes the interface's value.
	interfaceECS := func(propertyAnnotation string) string {
		return testutil.Doc(`
  <interface name="I">
    <annotation name="org.freedesktop.DBus.Property.EmitsChangedSignal" value="false"/>
    <property name="P" type="s" access="read">` + propertyAnnotation + `</property>
  </interface>`)
	}

	report := compareDocs(t,
		interfaceECS(``),
		interfaceECS(`<annotation name="org.freedesktop.DBus.Property.EmitsChangedSignal" value="const"/>`))
	assertNotices(t, report, []Notice{
		{SeverityForwardsIncompatible, "Node 'I.P' became a constant."},
	})
}

func TestCompareAnnotationsOrderAfterMembers(t *testing.T) {
	oldDoc := testutil.Doc(`
  <interface name="I">
    <method name="Gone"/>
  </interface>`)
	newDoc := testutil.Doc(`
  <interface name="I">
    <annotation name="org.freedesktop.DBus.Deprecated" value="true"/>
  </interface>`)

	assertNotices(t, compareDocs(t, oldDoc, newDoc), []Notice{
		{SeverityBackwardsIncompatible, "Method 'I.Gone' has been removed."},
		{SeverityInfo, "Node 'I' has been deprecated."},
	})
}
