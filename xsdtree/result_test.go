package xsdtree

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfeld/xsdtools/xsderrors"
)

// writeInvoiceFixture writes a two-file schema set: the invoice schema
// imports the party schema. Returns the entry path.
func writeInvoiceFixture(t *testing.T, dir string) string {
	t.Helper()
	writeSchema(t, dir, "party.xsd", `<?xml version="1.0" encoding="UTF-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
           xmlns:pty="urn:test:party"
           targetNamespace="urn:test:party"
           elementFormDefault="qualified">
  <xs:complexType name="PartyType">
    <xs:sequence>
      <xs:element name="Name" type="xs:string"/>
    </xs:sequence>
  </xs:complexType>
</xs:schema>`)
	return writeSchema(t, dir, "invoice.xsd", `<?xml version="1.0" encoding="UTF-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
           xmlns:inv="urn:test:invoice"
           xmlns:pty="urn:test:party"
           targetNamespace="urn:test:invoice"
           elementFormDefault="qualified">
  <xs:import namespace="urn:test:party" schemaLocation="party.xsd"/>
  <xs:element name="Invoice" type="inv:InvoiceType"/>
  <xs:complexType name="InvoiceType">
    <xs:sequence>
      <xs:element name="ID" type="xs:string"/>
      <xs:element name="Note" type="xs:string" minOccurs="0" maxOccurs="unbounded"/>
      <xs:element name="Party" type="pty:PartyType"/>
    </xs:sequence>
  </xs:complexType>
</xs:schema>`)
}

func TestBuildForest_EndToEnd(t *testing.T) {
	entry := writeInvoiceFixture(t, t.TempDir())

	forest, err := BuildForest(WithEntryPaths(entry))
	require.NoError(t, err)
	assert.Empty(t, forest.Warnings)
	assert.Len(t, forest.Files, 2, "the imported schema is discovered")

	require.Len(t, forest.Roots, 1)
	invoice := forest.Roots[0]
	assert.Equal(t, "inv:Invoice", invoice.Name)
	assert.Equal(t, "/inv:Invoice", invoice.Path)

	note := forest.NodeByPath("/inv:Invoice/inv:Note")
	require.NotNil(t, note)
	assert.Equal(t, "0..*", note.Cardinality)

	name := forest.NodeByPath("/inv:Invoice/inv:Party/pty:Name")
	require.NotNil(t, name, "imported types must be traversed")
	assert.Equal(t, "xs:string", name.TypeName)

	assert.Equal(t, "inv", forest.Prefixes["urn:test:invoice"])
	assert.Equal(t, "pty", forest.Prefixes["urn:test:party"])
	assert.Nil(t, forest.NodeByPath("/no/such/path"))
}

func TestBuildForest_ParallelMatchesSequential(t *testing.T) {
	entry := writeInvoiceFixture(t, t.TempDir())

	sequential, err := BuildForest(WithEntryPaths(entry))
	require.NoError(t, err)
	parallel, err := BuildForest(WithEntryPaths(entry), WithParallelism(4))
	require.NoError(t, err)

	require.Len(t, parallel.Roots, len(sequential.Roots))
	for i := range sequential.Roots {
		assert.Equal(t, sequential.Roots[i].Path, parallel.Roots[i].Path)
	}
	assert.Len(t, parallel.Paths, len(sequential.Paths))
}

func TestBuildForest_NoEntryPaths(t *testing.T) {
	_, err := BuildForest()
	require.Error(t, err)
	assert.True(t, errors.Is(err, xsderrors.ErrConfig))
	assert.True(t, xsderrors.IsFatal(err))
}

func TestBuildForest_MissingEntryIsNonFatal(t *testing.T) {
	dir := t.TempDir()
	entry := writeInvoiceFixture(t, dir)

	forest, err := BuildForest(WithEntryPaths(filepath.Join(dir, "absent.xsd"), entry))
	require.NoError(t, err)
	require.Len(t, forest.Roots, 1)
	require.NotEmpty(t, forest.Warnings)
	assert.True(t, errors.Is(forest.Warnings[0], xsderrors.ErrDiscovery))
}

func TestBuildForest_CustomCompiler(t *testing.T) {
	entry := writeInvoiceFixture(t, t.TempDir())

	comp := newCompilation()
	comp.addGlobalElement(&ElementDecl{Name: qn(invoiceNS, "Stub")})
	forest, err := BuildForest(
		WithEntryPaths(entry),
		WithCompiler(compilerFunc(func([]string) (*Compilation, error) { return comp, nil })),
	)
	require.NoError(t, err)
	require.Len(t, forest.Roots, 1)
	assert.Equal(t, "inv:Stub", forest.Roots[0].Name)
}

// compilerFunc adapts a function to the Compiler interface.
type compilerFunc func(files []string) (*Compilation, error)

func (f compilerFunc) Compile(files []string) (*Compilation, error) { return f(files) }

func TestOptions_Validation(t *testing.T) {
	t.Run("nil compiler", func(t *testing.T) {
		_, err := applyOptions(WithEntryPaths("x.xsd"), WithCompiler(nil))
		require.Error(t, err)
		assert.True(t, errors.Is(err, xsderrors.ErrConfig))
	})
	t.Run("negative parallelism", func(t *testing.T) {
		_, err := applyOptions(WithEntryPaths("x.xsd"), WithParallelism(-1))
		require.Error(t, err)
		assert.True(t, errors.Is(err, xsderrors.ErrConfig))
	})
	t.Run("entry paths accumulate", func(t *testing.T) {
		cfg, err := applyOptions(WithEntryPaths("a.xsd"), WithEntryPaths("b.xsd", "c.xsd"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a.xsd", "b.xsd", "c.xsd"}, cfg.entries)
	})
}
