package diff

import (
	"testing"

	"github.com/godbusapi/deviate/api"
	"github.com/godbusapi/deviate/internal/parser"
	"github.com/godbusapi/deviate/internal/testutil"
)

func parseInterfaces(t *testing.T, doc string) *api.Interfaces {
	t.Helper()
	node, err := parser.New("test.xml", false, nil, nil).Parse([]byte(doc))
	testutil.NoError(t, err, "parse")
	return node.Interfaces()
}

func compareDocs(t *testing.T, oldDoc, newDoc string) *Report {
	t.Helper()
	return Compare(parseInterfaces(t, oldDoc), parseInterfaces(t, newDoc))
}

// assertNotices checks the full report against expected severity/message
// pairs, in order.
func assertNotices(t *testing.T, report *Report, want []Notice) {
	t.Helper()
	got := report.All()
	testutil.Len(t, got, len(want), "notice count")
	for i := range want {
		if i >= len(got) {
			return
		}
		testutil.Equal(t, want[i].Severity, got[i].Severity, "severity of notice %d", i)
		testutil.Equal(t, want[i].Message, got[i].Message, "message of notice %d", i)
	}
}

func TestCompareIdenticalDocuments(t *testing.T) {
	doc := testutil.Doc(`
  <interface name="com.example.A">
    <method name="M"><arg name="x" type="s" direction="in"/></method>
    <signal name="S"><arg name="y" type="u"/></signal>
    <property name="P" type="s" access="read"/>
    <annotation name="org.freedesktop.DBus.Deprecated" value="true"/>
  </interface>`)

	report := compareDocs(t, doc, doc)
	testutil.Len(t, report.All(), 0, "identical documents produce no notices")
	testutil.False(t, report.HasBackwardsIncompatibilities(), "nothing incompatible")
}

func TestCompareInterfaceAddedRemoved(t *testing.T) {
	oldDoc := testutil.Doc(`<interface name="com.example.A"/><interface name="com.example.B"/>`)
	newDoc := testutil.Doc(`<interface name="com.example.B"/><interface name="com.example.C"/>`)

	assertNotices(t, compareDocs(t, oldDoc, newDoc), []Notice{
		{SeverityBackwardsIncompatible, "Interface 'com.example.A' has been removed."},
		{SeverityForwardsIncompatible, "Interface 'com.example.C' has been added."},
	})
}

func TestCompareMethodAddedRemoved(t *testing.T) {
	oldDoc := testutil.Doc(`<interface name="I"><method name="Old"/></interface>`)
	newDoc := testutil.Doc(`<interface name="I"><method name="New"/></interface>`)

	assertNotices(t, compareDocs(t, oldDoc, newDoc), []Notice{
		{SeverityBackwardsIncompatible, "Method 'I.Old' has been removed."},
		{SeverityForwardsIncompatible, "Method 'I.New' has been added."},
	})
}

func TestCompareSignalAndPropertyAddedRemoved(t *testing.T) {
	oldDoc := testutil.Doc(`
  <interface name="I">
    <signal name="S"/>
    <property name="P" type="s" access="read"/>
  </interface>`)
	newDoc := testutil.Doc(`<interface name="I"/>`)

	assertNotices(t, compareDocs(t, oldDoc, newDoc), []Notice{
		{SeverityBackwardsIncompatible, "Property 'I.P' has been removed."},
		{SeverityBackwardsIncompatible, "Signal 'I.S' has been removed."},
	})
}

func TestCompareArgumentChanges(t *testing.T) {
	oldDoc := testutil.Doc(`
  <interface name="I">
    <method name="M">
      <arg name="a" type="s" direction="in"/>
      <arg name="b" type="u" direction="in"/>
      <arg name="c" type="b" direction="in"/>
    </method>
  </interface>`)
	newDoc := testutil.Doc(`
  <interface name="I">
    <method name="M">
      <arg name="renamed" type="s" direction="in"/>
      <arg name="b" type="i" direction="in"/>
      <arg name="c" type="b" direction="out"/>
    </method>
  </interface>`)

	assertNotices(t, compareDocs(t, oldDoc, newDoc), []Notice{
		{SeverityInfo, "Argument 0 of 'I.M' has changed name from 'a' to 'renamed'."},
		{SeverityBackwardsIncompatible, "Argument 1 of 'I.M' has changed type from 'u' to 'i'."},
		{SeverityBackwardsIncompatible, "Argument 2 of 'I.M' has changed direction from 'in' to 'out'."},
	})
}

func TestCompareArgumentAddedRemoved(t *testing.T) {
	oldDoc := testutil.Doc(`
  <interface name="I">
    <method name="M"><arg name="a" type="s" direction="in"/></method>
    <signal name="S"><arg name="x" type="u"/><arg name="y" type="u"/></signal>
  </interface>`)
	newDoc := testutil.Doc(`
  <interface name="I">
    <method name="M">
      <arg name="a" type="s" direction="in"/>
      <arg name="extra" type="u" direction="in"/>
    </method>
    <signal name="S"><arg name="x" type="u"/></signal>
  </interface>`)

	assertNotices(t, compareDocs(t, oldDoc, newDoc), []Notice{
		{SeverityBackwardsIncompatible, "Argument 1 ('extra') of method 'I.M' has been added."},
		{SeverityBackwardsIncompatible, "Argument 1 ('y') of signal 'I.S' has been removed."},
	})
}

func TestComparePropertyTypeChanged(t *testing.T) {
	oldDoc := testutil.Doc(`<interface name="I"><property name="P" type="s" access="read"/></interface>`)
	newDoc := testutil.Doc(`<interface name="I"><property name="P" type="i" access="read"/></interface>`)

	assertNotices(t, compareDocs(t, oldDoc, newDoc), []Notice{
		{SeverityBackwardsIncompatible, "Property 'I.P' has changed type from 's' to 'i'."},
	})
}

func TestComparePropertyAccessChanges(t *testing.T) {
	tests := []struct {
		name         string
		oldAccess    string
		newAccess    string
		wantSeverity Severity
		wantMessage  string
	}{
		{
			"read widens to readwrite",
			"read", "readwrite",
			SeverityForwardsIncompatible,
			"Property 'I.P' has changed access from 'read' to 'readwrite', becoming less restrictive.",
		},
		{
			"write widens to readwrite",
			"write", "readwrite",
			SeverityForwardsIncompatible,
			"Property 'I.P' has changed access from 'write' to 'readwrite', becoming less restrictive.",
		},
		{
			"read flips to write",
			"read", "write",
			SeverityBackwardsIncompatible,
			"Property 'I.P' has changed access from 'read' to 'write'.",
		},
		{
			"readwrite narrows to read",
			"readwrite", "read",
			SeverityBackwardsIncompatible,
			"Property 'I.P' has changed access from 'readwrite' to 'read'.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldDoc := testutil.Doc(`<interface name="I"><property name="P" type="s" access="` + tt.oldAccess + `"/></interface>`)
			newDoc := testutil.Doc(`<interface name="I"><property name="P" type="s" access="` + tt.newAccess + `"/></interface>`)
			assertNotices(t, compareDocs(t, oldDoc, newDoc), []Notice{
				{tt.wantSeverity, tt.wantMessage},
			})
		})
	}
}

func TestComparePropertyTypeAndAccessBothReported(t *testing.T) {
	oldDoc := testutil.Doc(`<interface name="I"><property name="P" type="s" access="read"/></interface>`)
	newDoc := testutil.Doc(`<interface name="I"><property name="P" type="i" access="readwrite"/></interface>`)

	assertNotices(t, compareDocs(t, oldDoc, newDoc), []Notice{
		{SeverityBackwardsIncompatible, "Property 'I.P' has changed type from 's' to 'i'."},
		{SeverityForwardsIncompatible, "Property 'I.P' has changed access from 'read' to 'readwrite', becoming less restrictive."},
	})
}

func TestCompareOrderingWithinInterface(t *testing.T) {
	// Methods, then properties, then signals; old-keyed entries before
	// additions.
	oldDoc := testutil.Doc(`
  <interface name="I">
    <signal name="S"/>
    <property name="P" type="s" access="read"/>
    <method name="M"/>
  </interface>`)
	newDoc := testutil.Doc(`
  <interface name="I">
    <method name="M2"/>
    <signal name="S2"/>
    <property name="P2" type="s" access="read"/>
  </interface>`)

	assertNotices(t, compareDocs(t, oldDoc, newDoc), []Notice{
		{SeverityBackwardsIncompatible, "Method 'I.M' has been removed."},
		{SeverityForwardsIncompatible, "Method 'I.M2' has been added."},
		{SeverityBackwardsIncompatible, "Property 'I.P' has been removed."},
		{SeverityForwardsIncompatible, "Property 'I.P2' has been added."},
		{SeverityBackwardsIncompatible, "Signal 'I.S' has been removed."},
		{SeverityForwardsIncompatible, "Signal 'I.S2' has been added."},
	})
}

func TestCompareAgainstEmpty(t *testing.T) {
	doc := testutil.Doc(`<interface name="I"><method name="M"/></interface>`)
	empty := testutil.Doc(``)

	assertNotices(t, compareDocs(t, empty, doc), []Notice{
		{SeverityForwardsIncompatible, "Interface 'I' has been added."},
	})
	assertNotices(t, compareDocs(t, doc, empty), []Notice{
		{SeverityBackwardsIncompatible, "Interface 'I' has been removed."},
	})
}

func TestReportCategoryFiltering(t *testing.T) {
	oldDoc := testutil.Doc(`
  <interface name="I">
    <method name="M"><arg name="a" type="s" direction="in"/></method>
    <method name="Gone"/>
  </interface>`)
	newDoc := testutil.Doc(`
  <interface name="I">
    <method name="M"><arg name="b" type="s" direction="in"/></method>
    <method name="Fresh"/>
  </interface>`)

	report := compareDocs(t, oldDoc, newDoc)
	testutil.Len(t, report.All(), 3, "all notices stored")

	infoOnly := report.Notices(CategoryInfo)
	testutil.Len(t, infoOnly, 1, "info filter")
	testutil.Equal(t, SeverityInfo, infoOnly[0].Severity, "info severity")

	incompat := report.Notices(CategoryBackwards, CategoryForwards)
	testutil.Len(t, incompat, 2, "incompatibility filter")

	testutil.Len(t, report.Notices(), 0, "no categories enabled")
	testutil.True(t, report.HasBackwardsIncompatibilities(), "gate unaffected by filtering")
}

func TestSeverityOrderingAndNames(t *testing.T) {
	testutil.True(t, SeverityInfo < SeverityForwardsIncompatible, "info below forwards")
	testutil.True(t, SeverityForwardsIncompatible < SeverityBackwardsIncompatible, "forwards below backwards")

	testutil.Equal(t, "info", SeverityInfo.String())
	testutil.Equal(t, "forwards-incompatible", SeverityForwardsIncompatible.String())
	testutil.Equal(t, "backwards-incompatible", SeverityBackwardsIncompatible.String())

	testutil.Equal(t, CategoryInfo, SeverityInfo.Category())
	testutil.Equal(t, CategoryForwards, SeverityForwardsIncompatible.Category())
	testutil.Equal(t, CategoryBackwards, SeverityBackwardsIncompatible.Category())
	testutil.Len(t, AllCategories(), 3, "category count")
}
