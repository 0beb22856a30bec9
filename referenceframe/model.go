package referenceframe

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"go.viam.com/vehiclekin/utils"
)

// Model is an immutable tree of named links connected by named joints.
type Model struct {
	name   string
	root   string
	links  map[string]Link
	joints map[string]Joint
}

// NewModel links the given joints and links into a tree and checks that the tree can be walked:
// names are unique, every joint references existing links, every link has at most one parent joint,
// joint limits are ordered, there is exactly one root and no cycle. All problems found are returned together.
// The ParentJoint and ChildJoints fields of the given links are ignored and recomputed from the joints.
func NewModel(name string, links []Link, joints []Joint) (*Model, error) {
	if len(links) == 0 {
		return nil, ErrNoModelInformation
	}

	m := &Model{
		name:   name,
		links:  make(map[string]Link, len(links)),
		joints: make(map[string]Joint, len(joints)),
	}

	var errs error
	for _, l := range links {
		if l.Name == "" {
			errs = multierr.Append(errs, errors.Wrap(ErrInvalidTopology, "link with an empty name"))
			continue
		}
		if _, ok := m.links[l.Name]; ok {
			errs = multierr.Append(errs, NewDuplicateNameError("link", l.Name))
			continue
		}
		l = l.clone()
		l.ParentJoint = ""
		l.ChildJoints = nil
		m.links[l.Name] = l
	}

	parents := map[string][]string{}
	for _, j := range joints {
		if j.Name == "" {
			errs = multierr.Append(errs, errors.Wrap(ErrInvalidTopology, "joint with an empty name"))
			continue
		}
		if _, ok := m.joints[j.Name]; ok {
			errs = multierr.Append(errs, NewDuplicateNameError("joint", j.Name))
			continue
		}
		if _, err := ParseJointType(string(j.Type)); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if j.Limit != nil && j.Limit.Lower > j.Limit.Upper {
			errs = multierr.Append(errs, NewInvalidLimitError(j.Name, j.Limit.Lower, j.Limit.Upper))
			continue
		}
		parent, ok := m.links[j.Parent]
		if !ok {
			errs = multierr.Append(errs, NewMissingLinkError(j.Name, j.Parent))
		}
		child, childOK := m.links[j.Child]
		if !childOK {
			errs = multierr.Append(errs, NewMissingLinkError(j.Name, j.Child))
		}
		if !ok || !childOK {
			continue
		}

		m.joints[j.Name] = j.clone()
		parent.ChildJoints = append(parent.ChildJoints, j.Name)
		m.links[j.Parent] = parent
		parents[j.Child] = append(parents[j.Child], j.Name)
		// re-read the child, it may be the parent we just updated
		child = m.links[j.Child]
		child.ParentJoint = j.Name
		m.links[j.Child] = child
	}

	for linkName, js := range parents {
		if len(js) > 1 {
			sort.Strings(js)
			errs = multierr.Append(errs, NewMultipleParentsError(linkName, js...))
		}
	}
	if errs != nil {
		return nil, errs
	}

	if err := m.checkAcyclic(); err != nil {
		return nil, err
	}

	var roots []string
	for linkName, l := range m.links {
		if l.ParentJoint == "" {
			roots = append(roots, linkName)
		}
	}
	sort.Strings(roots)
	if len(roots) != 1 {
		return nil, NewRootError(roots)
	}
	m.root = roots[0]

	return m, nil
}

// Name returns the name of the model.
func (m *Model) Name() string {
	return m.name
}

// Root returns the name of the link that has no parent joint.
func (m *Model) Root() string {
	return m.root
}

// Link returns a copy of the named link.
func (m *Model) Link(name string) (Link, bool) {
	l, ok := m.links[name]
	if !ok {
		return Link{}, false
	}
	return l.clone(), true
}

// Joint returns a copy of the named joint.
func (m *Model) Joint(name string) (Joint, bool) {
	j, ok := m.joints[name]
	if !ok {
		return Joint{}, false
	}
	return j.clone(), true
}

// LinkNames returns the sorted names of every link in the model.
func (m *Model) LinkNames() []string {
	return sortedKeys(m.links)
}

// JointNames returns the names of every joint in the model, parents before children.
// Siblings are ordered by name.
func (m *Model) JointNames() []string {
	names := make([]string, 0, len(m.joints))
	var visit func(link string)
	visit = func(link string) {
		children := append([]string(nil), m.links[link].ChildJoints...)
		sort.Strings(children)
		for _, jointName := range children {
			names = append(names, jointName)
			visit(m.joints[jointName].Child)
		}
	}
	visit(m.root)
	return names
}

// checkAcyclic builds the directed parent to child graph of the links and reports every cycle in it.
func (m *Model) checkAcyclic() error {
	names := m.LinkNames()
	ids := make(map[string]int64, len(names))
	g := simple.NewDirectedGraph()
	for i, name := range names {
		ids[name] = int64(i)
		g.AddNode(simple.Node(i))
	}

	var errs error
	for _, jointName := range sortedKeys(m.joints) {
		j := m.joints[jointName]
		if j.Parent == j.Child {
			errs = multierr.Append(errs, NewCycleError([]string{j.Child}))
			continue
		}
		g.SetEdge(g.NewEdge(simple.Node(ids[j.Parent]), simple.Node(ids[j.Child])))
	}

	if _, err := topo.Sort(g); err != nil {
		var cycles topo.Unorderable
		if !errors.As(err, &cycles) {
			return multierr.Append(errs, err)
		}
		for _, component := range cycles {
			linkNames := make([]string, 0, len(component))
			for _, n := range component {
				linkNames = append(linkNames, names[n.ID()])
			}
			sort.Strings(linkNames)
			errs = multierr.Append(errs, NewCycleError(linkNames))
		}
	}
	return errs
}

func sortedKeys[T any](m map[string]T) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}

// String prints out a table of each joint of the model in depth first order, with columns of name, type,
// parent, child, origin translation, origin orientation and limits.
func (m *Model) String() string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Joint", "Type", "Parent", "Child", "Translation", "Orientation", "Limits"})
	for i, name := range m.JointNames() {
		j := m.joints[name]
		tra := j.Origin.Point()
		ori := j.Origin.Orientation().EulerAngles()
		limits := ""
		if j.Limit != nil {
			limits = fmt.Sprintf("[%.3f, %.3f]", j.Limit.Lower, j.Limit.Upper)
		}
		t.AppendRow([]interface{}{
			fmt.Sprintf("%d", i+1),
			j.Name,
			string(j.Type),
			j.Parent,
			j.Child,
			fmt.Sprintf("X:%.3f, Y:%.3f, Z:%.3f", tra.X, tra.Y, tra.Z),
			fmt.Sprintf(
				"Roll:%.2f, Pitch:%.2f, Yaw:%.2f",
				utils.RadToDeg(ori.Roll),
				utils.RadToDeg(ori.Pitch),
				utils.RadToDeg(ori.Yaw),
			),
			limits,
		})
	}
	return t.Render()
}
