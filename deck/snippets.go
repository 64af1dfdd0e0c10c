package deck

// C++ listings shown in the talk.
const (
	// MyClass takes its mesh and configuration from the caller.
	testableCode = `class MyClass {
protected:
    /// Member reference to the mesh
    const fvMesh& mesh_;

    /// A copy of the dictionary
    dictionary dict_;
public:

    /// Construct
    MyClass(const fvMesh&, const dictionary&);
};

// DB part of the mesh interface is interesting
mesh_.lookupObject<volVectorField>("U") ....
`

	// A class that reads its own dictionary from disk.
	selfConfigured = `// Build the dictionary content
IStringStream is("parameter "+Foam::name(parameterVal)+';');
IOdictionary annoyingDict
(
    IOobject
    (
        "annoyingDict", runTime.constant(), runTime,
        IOobject::NO_READ, IOobject::NO_WRITE, false
    ),
    is
);
// Write it to disk just before constructing the object
annoyingDict.regIOobject::write();
// Now test construction of the not-so-configurable class
annoyingClass obj(...); // ctor will read annoyingDict
`

	testCase = `TEST_CASE
(
    "Check time index",
    "[cavity][serial][parallel]"
) {
    // Access the global time object
    Time& runTime = *timePtr;

    // Gather important test info
    CAPTURE(runTime.timeIndex());

    // Actual test expression
    REQUIRE(runTime.timeIndex() == 0);
}
`

	// Console report of a failing test case.
	testCaseLog = `myClassTests.C:13: FAILED:
    REQUIRE( runTime.timeIndex() == 0 )
with expansion:
    1 == 0
with message:
    runTime.timeIndex() := 1
===================================
test cases: 2 | 1 passed | 1 failed
assertions: 3 | 2 passed | 1 failed
`

	// A run-time selection test case before any reflection helpers.
	rtsTest = `#include "baseModel.H"
   
TEST_CASE
(
    "baseModel tests",
    "[cavity][serial][parallel]"
) {
	dictionary config;
    config.set("baseModelType", "concrete1");
	auto skel = generateSchema<baseModel>(config);
	// expensive to construct, has heavy dependencies...
	autoPtr<baseModel> bm = baseModel::New(skel, mesh);
    // test check
    REQUIRE(bm->isEverythingOK());
}`

	handsOnClass = `class myClass
{
    const fvMesh& mesh_;
    const dictionary& dict_;
    bool velocityIsFound_;
    label setting_;
    bool velocityIsFound() const {return velocityIsFound_;}
public:
    myClass(const fvMesh& mesh, const dictionary& dict)
    : mesh_(mesh), dict_(dict),
        velocityIsFound_(mesh_.foundObject<volVectorField>("U")),
        setting_(readLabel(dict_.lookup("setting")))
    {}
    virtual ~myClass(){}
    label setting() const {return setting_;}
};
`

	handsOnProduction = `/// Solver or production-lib code
IOdictionary dict
(
    IOobject
    (
        "myClassDict",
        runTime.constant(),
        mesh,
        IOobject::MUST_READ,
        IOobject::NO_WRITE
    )
);
/// but trades-off triviality of
/// runtime-modifiability!
myClass myObj(mesh, dict);
`

	handsOnTest = `/// Test code
dictionary dict;
dict.set("setting", 4);
/// Explicitely documents
/// required keywords
myClass myObj(mesh, dict);
`

	// Parametrised Catch2 tests.
	handsOnCatch2 = `// Catch2 is the unit-testing backend !! Pseudo-code !!
// There is also Signature-parametrised tests
TEMPLATE_TEST_CASE
(
    "Matrix classes work for supported types",
    "[cavity][serial]", scalar, vector, tensor
) {
    // Value-parametrised tests
    auto n = GENERATE(10, 200, 500); auto src = Randomize(n);
    SECTION("source stores the currect entries") {
        Matrix<TestType> matrix(TestType::zero, src);
        REQUIRE_THAT(matrix.source(), Matchers::Approx(src));
    }
    SECTION("LDU Addressing gets constructed correctly") {
        // Similar testing...
        // Checkout Catch2 docs!
    }
}
`

	// Reaching private members from a test.
	espionage = `/// Private methods/data ???
using MethodType = bool(myClass::*)(); //< fnc ptr type to method
/// Macros from FoamScience/OpenFOAM-Unit-testing: https://t.ly/birh0
SPECIALIZE_MEMBER_METHOD_STEALER(velocityIsFound, MethodType, myClass);
TEST_CASE
(
    "myClass can querry the mesh DB",
    "[cavity][serial][parallel]"
) {
    dictionary config;
    config.set("setting", 4);
    myClass obj(mesh, config);
    REQUIRE(
        CALL_MEMBER_METHOD(velocityIsFound, myClass, obj) ()
    );
}
`

	// Turning aborts into test failures.
	timeouts = `#include <csetjmp>
#include <csignal>
jmp_buf project_env; // POSIX signals
void onSigabrt(int signum) {
  signal (signum, SIG_DFL); longjmp (project_env, 1);
}
void tryAndCatchAbortingCode(std::function<void(void)> func) {
    FatalError.dontThrowExceptions(); //< hard fails
    if (setjmp (amr_env) == 0) {
        signal(SIGTERM, &onSigabrt);
        func(); signal(SIGTERM, SIG_DFL);
    } else { REQUIRE(false); }//< Fail the test case 
}
`
)
